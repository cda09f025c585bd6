package vendorservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is the HTTP client for the vendor service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a new vendor service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVendor fetches a vendor account record by id
func (c *Client) GetVendor(ctx context.Context, vendorID int64) (*Vendor, error) {
	url := fmt.Sprintf("%s/internal/vendors/%d", c.baseURL, vendorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid vendor ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrVendorNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var vendor Vendor
	if err := json.NewDecoder(resp.Body).Decode(&vendor); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &vendor, nil
}

// GetVendorWithGracefulDegradation fetches the vendor record but converts
// transport-level failures into ErrServiceDegraded so read paths (the trial
// status endpoint) can answer conservatively instead of erroring out.
func (c *Client) GetVendorWithGracefulDegradation(ctx context.Context, vendorID int64) (*Vendor, error) {
	c.log.Info("Fetching vendor record for vendor_id=%d", vendorID)

	vendor, err := c.GetVendor(ctx, vendorID)
	if err != nil {
		// A missing vendor is a business error, pass it through
		if err == ErrVendorNotFound {
			c.log.Info("Vendor vendor_id=%d not found", vendorID)
			return nil, err
		}

		// Everything else (unreachable service, timeout, parse errors) is
		// degraded mode. Log at ERROR so it gets noticed quickly.
		c.log.Error("VendorService unavailable, applying graceful degradation for vendor_id=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: vendor_id=%d, error=%v", ErrServiceDegraded, vendorID, err)
	}

	c.log.Info("Successfully fetched vendor record for vendor_id=%d", vendorID)
	return vendor, nil
}

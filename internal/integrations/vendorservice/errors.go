package vendorservice

import "errors"

var (
	// ErrVendorNotFound is returned when the vendor does not exist
	ErrVendorNotFound = errors.New("vendorservice: vendor not found")

	// ErrNoTrial is returned when the vendor has no trial window
	ErrNoTrial = errors.New("vendorservice: vendor has no trial period")

	// ErrInvalidResponse is returned on unexpected responses from the service
	ErrInvalidResponse = errors.New("vendorservice: invalid response")

	// ErrServiceDegraded is returned when the service is unreachable and the
	// caller should degrade gracefully
	ErrServiceDegraded = errors.New("vendorservice: service degraded")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("vendorservice: internal error")
)

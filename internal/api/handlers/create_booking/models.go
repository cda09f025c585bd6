package create_booking

import (
	"fmt"
	"time"

	"github.com/housnkuh/booking-service/internal/domain"
	createBooking "github.com/housnkuh/booking-service/internal/usecase/create_booking"
)

// BookingRequest is the HTTP request model: the final selection plus the
// requested move-in date
type BookingRequest struct {
	ProvisionType        string              `json:"provisionType"`
	UnitCounts           map[string]int      `json:"unitCounts"`
	AddonIDs             []string            `json:"addonIds"`
	Zusatzleistungen     ZusatzleistungenDTO `json:"zusatzleistungen"`
	RentalDurationMonths int                 `json:"rentalDurationMonths"`
	ScheduledStartDate   *string             `json:"scheduledStartDate,omitempty"`
}

// ZusatzleistungenDTO carries the two logistics-service flags
type ZusatzleistungenDTO struct {
	Storage  bool `json:"storage"`
	Shipping bool `json:"shipping"`
}

// BookingResponse is the HTTP response model for the created booking
type BookingResponse struct {
	ID       int64  `json:"id"`
	VendorID int64  `json:"vendorId"`
	Status   string `json:"status"`

	Package domain.PackageSnapshot `json:"package"`

	RequestedAt        time.Time `json:"requestedAt"`
	ScheduledStartDate *string   `json:"scheduledStartDate,omitempty"`

	IsTrialBooking    bool    `json:"isTrialBooking"`
	PaymentLiableFrom *string `json:"paymentLiableFrom,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model. The
// vendor id comes from the authenticated identity, never from the body.
func (r *BookingRequest) ToUseCaseRequest(vendorID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		VendorID: vendorID,
		Selection: domain.Selection{
			ProvisionType: domain.ProvisionType(r.ProvisionType),
			UnitCounts:    r.UnitCounts,
			AddonIDs:      r.AddonIDs,
			Zusatzleistungen: domain.Zusatzleistungen{
				Storage:  r.Zusatzleistungen.Storage,
				Shipping: r.Zusatzleistungen.Shipping,
			},
			RentalDurationMonths: r.RentalDurationMonths,
		},
	}

	if r.ScheduledStartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.ScheduledStartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduledStartDate: %w", err)
		}
		req.ScheduledStartDate = &startDate
	}

	return req, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		VendorID:           resp.VendorID,
		Status:             resp.Status,
		Package:            resp.Package,
		RequestedAt:        resp.RequestedAt,
		ScheduledStartDate: formatDatePtr(resp.ScheduledStartDate),
		IsTrialBooking:     resp.IsTrialBooking,
		PaymentLiableFrom:  formatDatePtr(resp.PaymentLiableFrom),
		CreatedAt:          resp.CreatedAt,
		UpdatedAt:          resp.UpdatedAt,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(domain.DateFormat)
	return &formatted
}

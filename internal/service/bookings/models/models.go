package models

import (
	"errors"
	"time"

	"github.com/housnkuh/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unrecognized status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// GetVendorBookingsRequest requests a vendor's booking list
type GetVendorBookingsRequest struct {
	UserID   int64   `json:"userId"`
	VendorID int64   `json:"vendorId"`
	Status   *string `json:"status,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *GetVendorBookingsRequest) ToDomainFilter() (domain.VendorBookingsFilter, error) {
	filter := domain.VendorBookingsFilter{VendorID: r.VendorID}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest requests a status transition on a booking
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
	// AssignedUnitIDs are the concrete rental units assigned by staff when
	// confirming the booking
	AssignedUnitIDs []string `json:"assignedUnitIds,omitempty"`
}

// Response models

// BookingResponse carries a booking with its frozen snapshot and the derived
// status label
type BookingResponse struct {
	ID       int64  `json:"id"`
	VendorID int64  `json:"vendorId"`
	Status   string `json:"status"`

	// StatusLabel is derived for display; unknown statuses render the
	// neutral fallback label instead of failing
	StatusLabel domain.StatusLabel `json:"statusLabel"`

	// Package is the snapshot stored at submission time, returned verbatim
	Package domain.PackageSnapshot `json:"package"`

	RequestedAt        time.Time `json:"requestedAt"`
	ConfirmedAt        *string   `json:"confirmedAt,omitempty"`
	ScheduledStartDate *string   `json:"scheduledStartDate,omitempty"`
	ActualStartDate    *string   `json:"actualStartDate,omitempty"`

	IsTrialBooking    bool    `json:"isTrialBooking"`
	PaymentLiableFrom *string `json:"paymentLiableFrom,omitempty"`

	AssignedUnitIDs []string `json:"assignedUnitIds,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse carries a booking list
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatusCountsResponse carries per-status counts for filter-tab badges
type StatusCountsResponse struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// TrialStatusResponse carries the derived trial state and gating hints
type TrialStatusResponse struct {
	State         string `json:"state"`
	DaysRemaining int    `json:"daysRemaining"`
	ShowWarning   bool   `json:"showWarning"`
	Urgent        bool   `json:"urgent"`
	AccessBlocked bool   `json:"accessBlocked"`
	TrialEndDate  string `json:"trialEndDate"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking into the response DTO. The
// label fallback flag is intentionally dropped here; the service logs it.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	label, _ := domain.DeriveStatusLabel(b.Status)

	resp := &BookingResponse{
		ID:              b.ID,
		VendorID:        b.VendorID,
		Status:          string(b.Status),
		StatusLabel:     label,
		Package:         b.Package,
		RequestedAt:     b.RequestedAt,
		IsTrialBooking:  b.IsTrialBooking,
		AssignedUnitIDs: b.AssignedUnitIDs,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	resp.ConfirmedAt = formatTimePtr(b.ConfirmedAt, time.RFC3339)
	resp.ScheduledStartDate = formatTimePtr(b.ScheduledStartDate, domain.DateFormat)
	resp.ActualStartDate = formatTimePtr(b.ActualStartDate, domain.DateFormat)
	resp.PaymentLiableFrom = formatTimePtr(b.PaymentLiableFrom, domain.DateFormat)

	return resp
}

// FromDomainBookingList converts a domain booking list into the response DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStatusCounts converts aggregated counts into the response DTO
func FromDomainStatusCounts(c domain.StatusCounts) *StatusCountsResponse {
	return &StatusCountsResponse{
		All:       c.All,
		Pending:   c.Pending,
		Confirmed: c.Confirmed,
		Active:    c.Active,
		Completed: c.Completed,
	}
}

// FromDomainTrialStatus converts a derived trial status into the response DTO
func FromDomainTrialStatus(s domain.TrialStatus, window domain.TrialWindow) *TrialStatusResponse {
	return &TrialStatusResponse{
		State:         string(s.State),
		DaysRemaining: s.DaysRemaining,
		ShowWarning:   s.ShouldWarn(),
		Urgent:        s.IsUrgent(),
		AccessBlocked: s.BlocksAccess(),
		TrialEndDate:  window.EndDate.Format(domain.DateFormat),
	}
}

// ToDomainBookingStatus converts a status string with validation
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTimePtr(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(layout)
	return &formatted
}

package create_booking

import (
	"time"

	"github.com/housnkuh/booking-service/internal/domain"
)

// Request is the booking submission: the vendor and the final selection
type Request struct {
	VendorID           int64
	Selection          domain.Selection
	ScheduledStartDate *time.Time // requested move-in date, optional
}

// Response is the created booking
type Response struct {
	ID       int64
	VendorID int64
	Status   string

	// Package is the snapshot frozen at this submission
	Package domain.PackageSnapshot

	RequestedAt        time.Time
	ScheduledStartDate *time.Time

	IsTrialBooking    bool
	PaymentLiableFrom *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

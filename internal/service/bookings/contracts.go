package bookings

import (
	"context"
	"time"

	"github.com/housnkuh/booking-service/internal/domain"
	storage "github.com/housnkuh/booking-service/internal/infra/storage/booking"
	"github.com/housnkuh/booking-service/internal/integrations/vendorservice"
)

// BookingRepository is the booking storage interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByVendor(ctx context.Context, filter domain.VendorBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, update storage.StatusUpdate) error
}

// VendorServiceClient is the vendor service client interface
type VendorServiceClient interface {
	GetVendor(ctx context.Context, vendorID int64) (*vendorservice.Vendor, error)
	GetVendorWithGracefulDegradation(ctx context.Context, vendorID int64) (*vendorservice.Vendor, error)
}

// TimeProvider supplies the current time (swapped out in tests)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

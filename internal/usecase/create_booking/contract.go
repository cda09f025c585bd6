package create_booking

import (
	"context"
	"time"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/internal/integrations/vendorservice"
)

// BookingRepository is the booking storage interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogueRepository is the catalogue storage interface
type CatalogueRepository interface {
	ListRentalUnits(ctx context.Context) ([]domain.RentalUnit, error)
	ListAddons(ctx context.Context) ([]domain.Addon, error)
}

// VendorServiceClient is the vendor service client interface
type VendorServiceClient interface {
	GetVendor(ctx context.Context, vendorID int64) (*vendorservice.Vendor, error)
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// Logger is the logging interface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

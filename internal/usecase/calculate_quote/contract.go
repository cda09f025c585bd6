package calculate_quote

import (
	"context"

	"github.com/housnkuh/booking-service/internal/domain"
)

// CatalogueRepository is the catalogue storage interface
type CatalogueRepository interface {
	ListRentalUnits(ctx context.Context) ([]domain.RentalUnit, error)
	ListAddons(ctx context.Context) ([]domain.Addon, error)
}

// Logger is the logging interface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

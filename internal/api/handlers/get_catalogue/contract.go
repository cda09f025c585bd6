package get_catalogue

import (
	"context"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/internal/service/catalogue/models"
)

type CatalogueService interface {
	GetCatalogue(ctx context.Context, provision domain.ProvisionType) (*models.CatalogueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

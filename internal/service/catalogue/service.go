package catalogue

import (
	"context"
	"fmt"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/internal/service/catalogue/models"
)

// Service serves the configurator catalogue
type Service struct {
	catalogueRepo CatalogueRepository
	logger        Logger
}

// NewService creates a new catalogue service
func NewService(catalogueRepo CatalogueRepository, logger Logger) *Service {
	return &Service{
		catalogueRepo: catalogueRepo,
		logger:        logger,
	}
}

// GetCatalogue returns rental units, addons, provision models and duration
// tiers. Addon selectability is evaluated against the given provision model;
// an unrecognized value falls back to basic (and is logged, never an error).
func (s *Service) GetCatalogue(ctx context.Context, provision domain.ProvisionType) (*models.CatalogueResponse, error) {
	if provision == "" {
		provision = domain.ProvisionBasic
	}
	if !provision.IsKnown() {
		s.logger.Warn("GetCatalogue: unrecognized provision type %q, falling back to basic", provision)
		provision = domain.ProvisionBasic
	}

	units, err := s.catalogueRepo.ListRentalUnits(ctx)
	if err != nil {
		s.logger.Error("GetCatalogue: failed to list rental units: %v", err)
		return nil, fmt.Errorf("%w: GetCatalogue - repository error: %v", ErrInternal, err)
	}

	addons, err := s.catalogueRepo.ListAddons(ctx)
	if err != nil {
		s.logger.Error("GetCatalogue: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: GetCatalogue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCatalogue: serving %d units, %d addons for provision=%s", len(units), len(addons), provision)
	return models.FromDomainCatalogue(units, addons, provision), nil
}

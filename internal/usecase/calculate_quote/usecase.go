package calculate_quote

import (
	"context"
	"fmt"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/internal/pricing"
)

// UseCase computes a live price quote for the configurator. The calculation
// itself is the pure engine in internal/pricing; this usecase only supplies
// the catalogues and the logging side channel.
type UseCase struct {
	catalogueRepo CatalogueRepository
	logger        Logger
}

// NewUseCase creates a new quote usecase
func NewUseCase(catalogueRepo CatalogueRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogueRepo: catalogueRepo,
		logger:        logger,
	}
}

// Execute computes the breakdown and summary for the selection. The engine
// is total: unknown ids degrade to zero cost, negative counts are clamped,
// unknown provision types fall back to the basic rate. Those degradations
// are logged here as developer warnings, never surfaced as errors.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	sel := req.Selection
	if sel.RentalDurationMonths < 0 {
		return nil, fmt.Errorf("%w: rentalDurationMonths must not be negative", ErrInvalidInput)
	}

	units, err := uc.catalogueRepo.ListRentalUnits(ctx)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to list rental units: %v", err)
		return nil, fmt.Errorf("%w: failed to list rental units: %v", ErrInternal, err)
	}

	addons, err := uc.catalogueRepo.ListAddons(ctx)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: failed to list addons: %v", ErrInternal, err)
	}

	uc.logUnknownReferences(units, addons, sel)

	breakdown := pricing.CalculateBreakdown(units, addons, sel)
	summary := pricing.ProjectSummary(units, sel)

	if !breakdown.ProvisionKnown {
		uc.logger.Warn("CalculateQuote: unrecognized provision type %q, basic rate used", sel.ProvisionType)
	}

	uc.logger.Info("CalculateQuote: subtotal=%.2f discount=%.2f monthlyTotal=%.2f duration=%d",
		breakdown.Subtotal, breakdown.DiscountAmount, breakdown.MonthlyTotal, sel.RentalDurationMonths)

	return &Response{Breakdown: breakdown, Summary: summary}, nil
}

// logUnknownReferences reports selection ids missing from the catalogue.
// Unknown ids contribute zero; the warning exists so stale clients get
// noticed.
func (uc *UseCase) logUnknownReferences(units []domain.RentalUnit, addons []domain.Addon, sel domain.Selection) {
	unitIDs := make(map[string]struct{}, len(units))
	for _, u := range units {
		unitIDs[u.ID] = struct{}{}
	}
	for id, count := range sel.UnitCounts {
		if count <= 0 {
			continue
		}
		if _, found := unitIDs[id]; !found {
			uc.logger.Warn("CalculateQuote: selection references unknown rental unit %q, contributing zero", id)
		}
	}

	addonIDs := make(map[string]struct{}, len(addons))
	for _, a := range addons {
		addonIDs[a.ID] = struct{}{}
	}
	for _, id := range sel.AddonIDs {
		if _, found := addonIDs[id]; !found {
			uc.logger.Warn("CalculateQuote: selection references unknown addon %q, contributing zero", id)
		}
	}
}

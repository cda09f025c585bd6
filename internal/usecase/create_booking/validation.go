package create_booking

import (
	"fmt"

	"github.com/housnkuh/booking-service/internal/domain"
)

// validateRequest validates the request shape. The pricing engine itself
// clamps negative counts for old persisted data, but new submissions are
// rejected outright so persisted selections stay clean.
func validateRequest(req *Request) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	sel := req.Selection

	if !sel.ProvisionType.IsKnown() {
		return fmt.Errorf("%w: unknown provision type %q", ErrInvalidInput, sel.ProvisionType)
	}

	if sel.RentalDurationMonths < domain.MinRentalDurationMonths ||
		sel.RentalDurationMonths > domain.MaxRentalDurationMonths {
		return fmt.Errorf("%w: rentalDurationMonths must be between %d and %d",
			ErrInvalidDuration, domain.MinRentalDurationMonths, domain.MaxRentalDurationMonths)
	}

	for id, count := range sel.UnitCounts {
		if count < 0 {
			return fmt.Errorf("%w: negative count for unit %q", ErrInvalidInput, id)
		}
		if count > domain.MaxUnitCount {
			return fmt.Errorf("%w: count for unit %q exceeds maximum of %d", ErrInvalidInput, id, domain.MaxUnitCount)
		}
	}

	if !sel.HasUnits() {
		return ErrNoUnitsSelected
	}

	return nil
}

// validateSelectionAgainstCatalogue checks that every referenced id exists
// and that premium-gated addons come with the premium provision model
func validateSelectionAgainstCatalogue(sel domain.Selection, units []domain.RentalUnit, addons []domain.Addon) error {
	unitIDs := make(map[string]struct{}, len(units))
	for _, u := range units {
		unitIDs[u.ID] = struct{}{}
	}
	for id, count := range sel.UnitCounts {
		if count <= 0 {
			continue
		}
		if _, found := unitIDs[id]; !found {
			return fmt.Errorf("%w: %q", ErrUnknownUnit, id)
		}
	}

	addonIndex := make(map[string]*domain.Addon, len(addons))
	for i := range addons {
		addonIndex[addons[i].ID] = &addons[i]
	}
	for _, id := range sel.AddonIDs {
		addon, found := addonIndex[id]
		if !found {
			return fmt.Errorf("%w: %q", ErrUnknownAddon, id)
		}
		if !addon.SelectableWith(sel.ProvisionType) {
			return fmt.Errorf("%w: %q", ErrAddonRequiresPremium, id)
		}
	}

	return nil
}

// dedupeAddonIDs removes duplicate addon ids while keeping order, so a
// doubled id in the payload cannot double-bill
func dedupeAddonIDs(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// Package pricing implements the price calculation engine and the package
// summary projection for the vendor configurator. Everything in here is a
// pure function over immutable inputs: no clock, no I/O, no hidden state, so
// it is safe to call concurrently from any number of requests.
package pricing

import (
	"github.com/housnkuh/booking-service/internal/domain"
)

// DiscountRateForDuration returns the duration discount as a monotonic step
// function: >= 12 months 10%, >= 6 months 5%, below that no discount.
// Arbitrary durations outside the offered tiers are handled the same way.
func DiscountRateForDuration(months int) float64 {
	switch {
	case months >= domain.DiscountThresholdFullYearMonths:
		return domain.DiscountRateFullYear
	case months >= domain.DiscountThresholdHalfYearMonths:
		return domain.DiscountRateHalfYear
	default:
		return 0
	}
}

// CalculateBreakdown computes the itemized monthly price for a selection.
//
// The function is total: it never fails for structurally valid input. Ids
// referenced by the selection but absent from the catalogue contribute zero
// and are skipped (persisted selections may reference ids the catalogue no
// longer carries). Negative counts are clamped to zero. Units priced on
// request are excluded from the arithmetic. Intermediate arithmetic stays at
// full precision; rounding is a display concern.
func CalculateBreakdown(units []domain.RentalUnit, addons []domain.Addon, sel domain.Selection) domain.PriceBreakdown {
	addonIndex := indexAddons(addons)

	var unitCosts float64
	// Iterate the catalogue, not the selection map, so the summation order
	// is stable and identical inputs produce bit-identical output.
	for i := range units {
		unit := &units[i]
		count := sel.UnitCounts[unit.ID]
		if count <= 0 {
			continue
		}
		if unit.HasFixedPrice() {
			unitCosts += unit.MonthlyPrice * float64(count)
		}
	}

	var addonCosts float64
	for _, id := range sel.AddonIDs {
		addon, found := addonIndex[id]
		if !found {
			continue
		}
		addonCosts += addon.MonthlyEquivalentPrice()
	}

	zusatzCosts := sel.Zusatzleistungen.MonthlyCost()

	subtotal := unitCosts + addonCosts + zusatzCosts
	discountRate := DiscountRateForDuration(sel.RentalDurationMonths)
	discountAmount := subtotal * discountRate

	return domain.PriceBreakdown{
		UnitCosts:             unitCosts,
		AddonCosts:            addonCosts,
		ZusatzleistungenCosts: zusatzCosts,
		Subtotal:              subtotal,
		DiscountRate:          discountRate,
		DiscountAmount:        discountAmount,
		MonthlyTotal:          subtotal - discountAmount,
		ProvisionRate:         sel.ProvisionType.Rate(),
		ProvisionKnown:        sel.ProvisionType.IsKnown(),
	}
}

// ProjectSummary converts a selection into named line items with extended
// prices, in catalogue order. Unresolvable ids are skipped. Units priced on
// request appear with a zero price and the PriceOnRequest marker so the UI
// can still show the quantity.
func ProjectSummary(units []domain.RentalUnit, sel domain.Selection) domain.PackageSummary {
	items := make([]domain.SummaryItem, 0)
	for i := range units {
		unit := &units[i]
		count := sel.UnitCounts[unit.ID]
		if count <= 0 {
			continue
		}
		item := domain.SummaryItem{
			UnitID: unit.ID,
			Name:   unit.Name,
			Count:  count,
		}
		if unit.HasFixedPrice() {
			item.Price = unit.MonthlyPrice * float64(count)
		} else {
			item.PriceOnRequest = true
		}
		items = append(items, item)
	}

	return domain.PackageSummary{
		Items:            items,
		Zusatzleistungen: sel.Zusatzleistungen,
	}
}

// Snapshot freezes a selection together with its breakdown and summary. The
// result is what gets persisted on a booking at submission time and must
// never be recomputed from a live catalogue afterwards.
func Snapshot(units []domain.RentalUnit, addons []domain.Addon, sel domain.Selection) domain.PackageSnapshot {
	return domain.PackageSnapshot{
		Selection: normalizeSelection(sel),
		Breakdown: CalculateBreakdown(units, addons, sel),
		Summary:   ProjectSummary(units, sel),
	}
}

// normalizeSelection clamps negative counts before the selection is frozen,
// so persisted snapshots never carry malformed counts
func normalizeSelection(sel domain.Selection) domain.Selection {
	if len(sel.UnitCounts) == 0 {
		return sel
	}
	normalized := make(map[string]int, len(sel.UnitCounts))
	for id, count := range sel.UnitCounts {
		if count > 0 {
			normalized[id] = count
		}
	}
	sel.UnitCounts = normalized
	return sel
}

func indexAddons(addons []domain.Addon) map[string]*domain.Addon {
	index := make(map[string]*domain.Addon, len(addons))
	for i := range addons {
		index[addons[i].ID] = &addons[i]
	}
	return index
}

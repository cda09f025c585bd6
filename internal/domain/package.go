package domain

// PriceBreakdown is the itemized monthly price derived from a Selection and
// the catalogues. Immutable once computed; recomputing from the same inputs
// yields identical output.
type PriceBreakdown struct {
	UnitCosts             float64 `json:"unitCosts"`
	AddonCosts            float64 `json:"addonCosts"`
	ZusatzleistungenCosts float64 `json:"zusatzleistungenCosts"`
	Subtotal              float64 `json:"subtotal"`
	DiscountRate          float64 `json:"discountRate"`
	DiscountAmount        float64 `json:"discountAmount"`
	MonthlyTotal          float64 `json:"monthlyTotal"`
	// ProvisionRate is informational: the commission percentage of the chosen
	// provision model. Not added to the monthly total.
	ProvisionRate float64 `json:"provisionRate"`
	// ProvisionKnown is false when the selection carried an unrecognized
	// provision type and the basic rate was used as fallback.
	ProvisionKnown bool `json:"provisionKnown"`
}

// SummaryItem is one named line item of a package summary
type SummaryItem struct {
	UnitID string  `json:"unitId"`
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Price  float64 `json:"price"` // extended price: monthly price x count
	// PriceOnRequest marks line items whose unit has no fixed price; their
	// Price is zero and excluded from all totals.
	PriceOnRequest bool `json:"priceOnRequest,omitempty"`
}

// PackageSummary is the human-readable projection of a selection, used for
// on-screen summaries and for the frozen snapshot on a booking
type PackageSummary struct {
	Items            []SummaryItem    `json:"items"`
	Zusatzleistungen Zusatzleistungen `json:"zusatzleistungen"`
}

// PackageSnapshot is the frozen record attached to a booking at submission
// time: the selection together with the breakdown and summary computed from
// the catalogue as it was in that moment. It is stored verbatim and never
// recomputed, so historical bookings stay accurate when prices change.
type PackageSnapshot struct {
	Selection Selection      `json:"selection"`
	Breakdown PriceBreakdown `json:"breakdown"`
	Summary   PackageSummary `json:"summary"`
}

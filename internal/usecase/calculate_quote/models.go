package calculate_quote

import "github.com/housnkuh/booking-service/internal/domain"

// Request is the quote request: the vendor's current selection in the
// configurator. Nothing is persisted.
type Request struct {
	Selection domain.Selection
}

// Response carries the computed breakdown and summary
type Response struct {
	Breakdown domain.PriceBreakdown
	Summary   domain.PackageSummary
}

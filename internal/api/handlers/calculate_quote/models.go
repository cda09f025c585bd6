package calculate_quote

import (
	"github.com/housnkuh/booking-service/internal/domain"
	calculateQuote "github.com/housnkuh/booking-service/internal/usecase/calculate_quote"
)

// QuoteRequest is the HTTP request model: the configurator selection
type QuoteRequest struct {
	ProvisionType        string              `json:"provisionType"`
	UnitCounts           map[string]int      `json:"unitCounts"`
	AddonIDs             []string            `json:"addonIds"`
	Zusatzleistungen     ZusatzleistungenDTO `json:"zusatzleistungen"`
	RentalDurationMonths int                 `json:"rentalDurationMonths"`
}

// ZusatzleistungenDTO carries the two logistics-service flags
type ZusatzleistungenDTO struct {
	Storage  bool `json:"storage"`
	Shipping bool `json:"shipping"`
}

// QuoteResponse is the HTTP response model
type QuoteResponse struct {
	Breakdown domain.PriceBreakdown `json:"breakdown"`
	Summary   domain.PackageSummary `json:"summary"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *QuoteRequest) ToUseCaseRequest() *calculateQuote.Request {
	return &calculateQuote.Request{
		Selection: domain.Selection{
			ProvisionType: domain.ProvisionType(r.ProvisionType),
			UnitCounts:    r.UnitCounts,
			AddonIDs:      r.AddonIDs,
			Zusatzleistungen: domain.Zusatzleistungen{
				Storage:  r.Zusatzleistungen.Storage,
				Shipping: r.Zusatzleistungen.Shipping,
			},
			RentalDurationMonths: r.RentalDurationMonths,
		},
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP model
func FromUseCaseResponse(resp *calculateQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Breakdown: resp.Breakdown,
		Summary:   resp.Summary,
	}
}

package models

import "github.com/housnkuh/booking-service/internal/domain"

// RentalUnitResponse is a rental unit catalogue entry
type RentalUnitResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MonthlyPrice   float64 `json:"monthlyPrice"`
	PriceOnRequest bool    `json:"priceOnRequest,omitempty"`
	Category       string  `json:"category"`
}

// AddonResponse is an addon catalogue entry. Selectable reflects whether the
// addon can be booked under the requested provision model.
type AddonResponse struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	MonthlyPrice             float64 `json:"monthlyPrice"`
	BillingPeriod            string  `json:"billingPeriod"`
	RequiresPremiumProvision bool    `json:"requiresPremiumProvision,omitempty"`
	Selectable               bool    `json:"selectable"`
}

// ProvisionTypeResponse describes a provision model
type ProvisionTypeResponse struct {
	ID   string  `json:"id"`
	Rate float64 `json:"rate"`
}

// CatalogueResponse is the full configurator catalogue
type CatalogueResponse struct {
	RentalUnits    []RentalUnitResponse    `json:"rentalUnits"`
	Addons         []AddonResponse         `json:"addons"`
	ProvisionTypes []ProvisionTypeResponse `json:"provisionTypes"`
	DurationTiers  []int                   `json:"durationTiers"`
}

// FromDomainCatalogue converts catalogue entries into the response DTO,
// marking addon selectability for the given provision model
func FromDomainCatalogue(units []domain.RentalUnit, addons []domain.Addon, provision domain.ProvisionType) *CatalogueResponse {
	resp := &CatalogueResponse{
		RentalUnits: make([]RentalUnitResponse, 0, len(units)),
		Addons:      make([]AddonResponse, 0, len(addons)),
		ProvisionTypes: []ProvisionTypeResponse{
			{ID: string(domain.ProvisionBasic), Rate: domain.ProvisionRateBasic},
			{ID: string(domain.ProvisionPremium), Rate: domain.ProvisionRatePremium},
		},
		DurationTiers: domain.RentalDurationTiers,
	}

	for _, u := range units {
		resp.RentalUnits = append(resp.RentalUnits, RentalUnitResponse{
			ID:             u.ID,
			Name:           u.Name,
			MonthlyPrice:   u.MonthlyPrice,
			PriceOnRequest: u.PriceOnRequest,
			Category:       string(u.Category),
		})
	}

	for i := range addons {
		a := &addons[i]
		resp.Addons = append(resp.Addons, AddonResponse{
			ID:                       a.ID,
			Name:                     a.Name,
			MonthlyPrice:             a.MonthlyPrice,
			BillingPeriod:            string(a.BillingPeriod),
			RequiresPremiumProvision: a.RequiresPremiumProvision,
			Selectable:               a.SelectableWith(provision),
		})
	}

	return resp
}

package domain

// Zusatzleistungen are the fixed-price logistics services, modeled separately
// from catalogue addons
type Zusatzleistungen struct {
	Storage  bool `json:"storage"`
	Shipping bool `json:"shipping"`
}

// MonthlyCost returns the flat monthly cost of the enabled services
func (z Zusatzleistungen) MonthlyCost() float64 {
	cost := 0.0
	if z.Storage {
		cost += StorageServicePrice
	}
	if z.Shipping {
		cost += ShippingServicePrice
	}
	return cost
}

// Selection is the vendor's package configuration: provision model, rental
// units with per-unit counts, addons, Zusatzleistungen flags and the rental
// duration. Mutable while configuring; frozen into a PackageSnapshot at
// booking submission time.
type Selection struct {
	ProvisionType ProvisionType `json:"provisionType"`
	// UnitCounts maps rental unit id to count. Absent or zero means not
	// selected. Ids missing from the catalogue are tolerated and skipped.
	UnitCounts           map[string]int   `json:"unitCounts"`
	AddonIDs             []string         `json:"addonIds"`
	Zusatzleistungen     Zusatzleistungen `json:"zusatzleistungen"`
	RentalDurationMonths int              `json:"rentalDurationMonths"`
}

// HasUnits returns true if at least one unit is selected with a positive count
func (s *Selection) HasUnits() bool {
	for _, count := range s.UnitCounts {
		if count > 0 {
			return true
		}
	}
	return false
}

package domain

// UnitCategory classifies a rental unit. Presentational only.
type UnitCategory string

const (
	CategoryStandard UnitCategory = "standard"
	CategoryCooled   UnitCategory = "cooled"
	CategoryPremium  UnitCategory = "premium"
)

// RentalUnit is a catalogue entry for a rentable sales/display area
// (e.g. "Verkaufsblock Lage A"). Defined by configuration, never user-created.
type RentalUnit struct {
	ID           string
	Name         string
	MonthlyPrice float64
	// PriceOnRequest marks units without a fixed price ("Preis auf Anfrage").
	// Such units are listed and counted but contribute zero to any total.
	PriceOnRequest bool
	Category       UnitCategory
}

// HasFixedPrice returns true if the unit participates in price arithmetic
func (u *RentalUnit) HasFixedPrice() bool {
	return !u.PriceOnRequest
}

// BillingPeriod is the billing cadence of an addon
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingWeekly  BillingPeriod = "weekly"
)

// Addon is a catalogue entry for an add-on service
type Addon struct {
	ID            string
	Name          string
	MonthlyPrice  float64
	BillingPeriod BillingPeriod
	// RequiresPremiumProvision gates selectability: the addon can only be
	// booked together with the premium provision model.
	RequiresPremiumProvision bool
}

// MonthlyEquivalentPrice returns the addon price normalized to one month.
// Weekly prices are normalized to a 4-week month.
func (a *Addon) MonthlyEquivalentPrice() float64 {
	if a.BillingPeriod == BillingWeekly {
		return a.MonthlyPrice * WeeksPerBillingMonth
	}
	return a.MonthlyPrice
}

// SelectableWith returns true if the addon may be selected under the given
// provision model
func (a *Addon) SelectableWith(p ProvisionType) bool {
	if a.RequiresPremiumProvision {
		return p == ProvisionPremium
	}
	return true
}

// ProvisionType is the commission model chosen by a vendor
type ProvisionType string

const (
	ProvisionBasic   ProvisionType = "basic"
	ProvisionPremium ProvisionType = "premium"
)

// IsKnown returns true for a recognized provision type
func (p ProvisionType) IsKnown() bool {
	return p == ProvisionBasic || p == ProvisionPremium
}

// Rate returns the commission rate of the provision model. Unrecognized
// values fall back to the basic rate, they never fail; callers that care
// should check IsKnown and log.
func (p ProvisionType) Rate() float64 {
	if p == ProvisionPremium {
		return ProvisionRatePremium
	}
	return ProvisionRateBasic
}

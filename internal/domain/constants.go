package domain

// Provision (commission) rates per provision model
const (
	ProvisionRateBasic   = 0.04
	ProvisionRatePremium = 0.07
)

// Zusatzleistungen flat monthly prices (EUR)
const (
	StorageServicePrice  = 20.0
	ShippingServicePrice = 5.0
)

// Discount tiers for the rental duration. The discount is a monotonic step
// function of the duration, not an enumerated lookup: any duration works.
const (
	DiscountThresholdHalfYearMonths = 6
	DiscountThresholdFullYearMonths = 12
	DiscountRateHalfYear            = 0.05
	DiscountRateFullYear            = 0.10
)

// Weekly-billed addons are normalized to a 4-week month for aggregation
const WeeksPerBillingMonth = 4

// Trial period configuration
const (
	TrialPeriodDays          = 30
	TrialWarnDaysRemaining   = 3
	TrialUrgentDaysRemaining = 1
)

// Business validation constants
const (
	MinRentalDurationMonths = 1
	MaxRentalDurationMonths = 24
	MaxUnitCount            = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RentalDurationTiers are the duration options offered in the configurator.
// Presentational only; the discount logic accepts arbitrary durations.
var RentalDurationTiers = []int{3, 6, 12}

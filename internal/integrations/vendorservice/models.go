package vendorservice

import "time"

// Vendor is the vendor account record from the vendor service. The trial
// window lives on the account, not on individual bookings.
type Vendor struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	IsTrialEligible bool       `json:"is_trial_eligible"`
	TrialStartDate  *time.Time `json:"trial_start_date"`
	TrialEndDate    *time.Time `json:"trial_end_date"`
	// TrialCancelled is the account-level early-cancellation flag. It short
	// circuits every other trial state.
	TrialCancelled bool `json:"trial_cancelled"`
}

// HasTrial returns true if the vendor has a trial window
func (v *Vendor) HasTrial() bool {
	return v.TrialStartDate != nil && v.TrialEndDate != nil
}

// ErrorResponse is the error payload of the vendor service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

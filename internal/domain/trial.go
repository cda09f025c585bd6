package domain

import (
	"math"
	"time"
)

// TrialWindow is the 30-day free period of a vendor account. Created once
// when a trial-eligible registration completes, read-only afterwards.
type TrialWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewTrialWindow builds a trial window starting at the given date
func NewTrialWindow(start time.Time) TrialWindow {
	return TrialWindow{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, TrialPeriodDays),
	}
}

// TrialState is the fine-grained state of the trial sub-machine
type TrialState string

const (
	TrialActive       TrialState = "active"
	TrialExpiringSoon TrialState = "expiring_soon"
	TrialLastDay      TrialState = "last_day"
	TrialExpired      TrialState = "expired"
	TrialCancelled    TrialState = "cancelled"
)

// TrialStatus combines the derived state with the countdown value that
// drives banners and gating in the UI
type TrialStatus struct {
	State         TrialState `json:"state"`
	DaysRemaining int        `json:"daysRemaining"`
}

// ShouldWarn returns true when the countdown banner should be shown
func (t TrialStatus) ShouldWarn() bool {
	return t.State == TrialExpiringSoon || t.State == TrialLastDay
}

// IsUrgent returns true when the warning should escalate to urgent styling
func (t TrialStatus) IsUrgent() bool {
	return t.State == TrialLastDay
}

// BlocksAccess returns true when full-access features should be gated
func (t TrialStatus) BlocksAccess() bool {
	return t.State == TrialExpired || t.State == TrialCancelled
}

// DeriveTrialState derives the trial state from the current clock reading.
// States are priority-ordered: cancelled > expired > lastDay > expiringSoon >
// active; only the highest-priority matching state is reported. Pure: no
// internal clock, re-evaluated fresh on every call.
func DeriveTrialState(now time.Time, window TrialWindow, cancelled bool) TrialStatus {
	remaining := window.EndDate.Sub(now)

	days := int(math.Ceil(remaining.Hours() / 24))
	if days < 0 {
		days = 0
	}

	switch {
	case cancelled:
		return TrialStatus{State: TrialCancelled, DaysRemaining: days}
	case remaining <= 0:
		return TrialStatus{State: TrialExpired, DaysRemaining: 0}
	case remaining <= time.Duration(TrialUrgentDaysRemaining)*24*time.Hour:
		return TrialStatus{State: TrialLastDay, DaysRemaining: days}
	case remaining <= time.Duration(TrialWarnDaysRemaining)*24*time.Hour:
		return TrialStatus{State: TrialExpiringSoon, DaysRemaining: days}
	default:
		return TrialStatus{State: TrialActive, DaysRemaining: days}
	}
}

package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
)

// validTransitions defines the state machine for booking status transitions.
// Transitions are strictly forward: a booking never regresses.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed},
	StatusConfirmed: {StatusActive},
	StatusActive:    {StatusCompleted},
	StatusCompleted: {},
}

// IsValid returns true if the status is a recognized booking status
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target
// is allowed
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

// AllStatuses lists the known statuses in lifecycle order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
}

// Booking represents a vendor's rental booking in the system
type Booking struct {
	ID       int64
	VendorID int64
	Status   BookingStatus

	// Package is the frozen snapshot of the selection, breakdown and summary
	// taken at submission time. Never recomputed from a live catalogue.
	Package PackageSnapshot

	RequestedAt time.Time
	// ConfirmedAt is non-nil iff the booking has left pending
	ConfirmedAt        *time.Time
	ScheduledStartDate *time.Time
	ActualStartDate    *time.Time

	IsTrialBooking bool
	// PaymentLiableFrom is the date the free trial converts into a paid
	// subscription. Only meaningful when IsTrialBooking is set.
	PaymentLiableFrom *time.Time

	// AssignedUnitIDs are set by staff at confirmation
	AssignedUnitIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the booking is still awaiting confirmation
func (b *Booking) IsOpen() bool {
	return b.Status == StatusPending
}

// IsRunning returns true if the booking has been confirmed and is not yet
// completed
func (b *Booking) IsRunning() bool {
	return b.Status == StatusConfirmed || b.Status == StatusActive
}

// HasAssignedUnits returns true if staff have assigned concrete rental units
func (b *Booking) HasAssignedUnits() bool {
	return len(b.AssignedUnitIDs) > 0
}

// StatusCounts holds per-status booking counts for filter-tab badges
type StatusCounts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// AggregateStatusCounts counts bookings per status in a single pass.
// Unrecognized statuses contribute to All only.
func AggregateStatusCounts(bookings []*Booking) StatusCounts {
	counts := StatusCounts{All: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			counts.Pending++
		case StatusConfirmed:
			counts.Confirmed++
		case StatusActive:
			counts.Active++
		case StatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// VendorBookingsFilter filters a vendor's booking list
type VendorBookingsFilter struct {
	VendorID int64
	Status   *BookingStatus // optional status filter
}

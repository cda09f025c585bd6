package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to active", StatusConfirmed, StatusActive, true},
		{"active to completed", StatusActive, StatusCompleted, true},
		{"no skipping pending to active", StatusPending, StatusActive, false},
		{"no skipping pending to completed", StatusPending, StatusCompleted, false},
		{"no regression confirmed to pending", StatusConfirmed, StatusPending, false},
		{"no regression active to confirmed", StatusActive, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusActive, false},
		{"no self transition", StatusActive, StatusActive, false},
		{"unknown source", BookingStatus("archived"), StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "status %s should be valid", s)
	}
	assert.False(t, BookingStatus("cancelled").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusActive.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, BookingStatus("archived").IsTerminal())
}

func TestAggregateStatusCounts(t *testing.T) {
	t.Run("counts per status in one pass", func(t *testing.T) {
		bookings := []*Booking{
			{Status: StatusPending},
			{Status: StatusPending},
			{Status: StatusConfirmed},
			{Status: StatusActive},
			{Status: StatusActive},
			{Status: StatusCompleted},
		}

		counts := AggregateStatusCounts(bookings)

		assert.Equal(t, StatusCounts{All: 6, Pending: 2, Confirmed: 1, Active: 2, Completed: 1}, counts)
	})

	t.Run("unknown statuses count in the total only", func(t *testing.T) {
		bookings := []*Booking{
			{Status: StatusPending},
			{Status: BookingStatus("archived")},
		}

		counts := AggregateStatusCounts(bookings)

		assert.Equal(t, 2, counts.All)
		assert.Equal(t, 1, counts.Pending)
		assert.Equal(t, 0, counts.Confirmed+counts.Active+counts.Completed)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, StatusCounts{}, AggregateStatusCounts(nil))
	})
}

func TestBooking_Predicates(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsOpen())
	assert.False(t, b.IsRunning())

	b.Status = StatusConfirmed
	assert.False(t, b.IsOpen())
	assert.True(t, b.IsRunning())

	b.Status = StatusCompleted
	assert.False(t, b.IsRunning())

	assert.False(t, b.HasAssignedUnits())
	b.AssignedUnitIDs = []string{"regal-s-01"}
	assert.True(t, b.HasAssignedUnits())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatusLabel(t *testing.T) {
	t.Run("every known status has a label", func(t *testing.T) {
		for _, s := range AllStatuses {
			label, ok := DeriveStatusLabel(s)
			assert.True(t, ok, "status %s should have a label", s)
			assert.NotEmpty(t, label.Text)
			assert.NotEmpty(t, label.ColorClass)
			assert.NotEmpty(t, label.Icon)
		}
	})

	t.Run("pending renders the waiting label", func(t *testing.T) {
		label, ok := DeriveStatusLabel(StatusPending)

		assert.True(t, ok)
		assert.Equal(t, "Ausstehend", label.Text)
		assert.Equal(t, "yellow", label.ColorClass)
	})

	t.Run("unknown status falls back to the neutral label", func(t *testing.T) {
		label, ok := DeriveStatusLabel(BookingStatus("archived"))

		assert.False(t, ok)
		assert.Equal(t, "Unbekannt", label.Text)
		assert.Equal(t, "gray", label.ColorClass)
		assert.Equal(t, "help-circle", label.Icon)
	})
}

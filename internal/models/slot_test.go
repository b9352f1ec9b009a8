package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSlotStatus(t *testing.T) {
	for _, raw := range []string{"available", "booked", "cancelled", "deleted"} {
		status, err := ParseSlotStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, SlotStatus(raw), status)
	}

	for _, raw := range []string{"", "Available", "free", "blocked", "BOOKED"} {
		_, err := ParseSlotStatus(raw)
		assert.Error(t, err, "status %q should be rejected", raw)
	}
}

func TestValidRange(t *testing.T) {
	start := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

	assert.True(t, Slot{StartTime: start, EndTime: start.Add(time.Hour)}.ValidRange())
	assert.False(t, Slot{StartTime: start, EndTime: start}.ValidRange())
	assert.False(t, Slot{StartTime: start.Add(time.Hour), EndTime: start}.ValidRange())
}

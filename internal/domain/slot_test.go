package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	slot := Slot{
		Interval:  Interval{Start: start, End: start.Add(time.Hour)},
		Available: true,
	}

	// Границы интервала читаются прямо со слота
	assert.Equal(t, start, slot.Start)
	assert.Equal(t, start.Add(time.Hour), slot.End)
	assert.Equal(t, time.Hour, slot.Duration())

	assert.True(t, slot.IsBookable())

	slot.Available = false
	assert.False(t, slot.IsBookable())
}

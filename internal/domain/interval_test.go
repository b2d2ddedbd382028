package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, startHour, startMin, endHour, endMin int) Interval {
	t.Helper()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	iv, err := NewInterval(
		day.Add(time.Duration(startHour)*time.Hour+time.Duration(startMin)*time.Minute),
		day.Add(time.Duration(endHour)*time.Hour+time.Duration(endMin)*time.Minute),
	)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		iv, err := NewInterval(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, iv.Duration())
	})

	t.Run("end equals start", func(t *testing.T) {
		_, err := NewInterval(start, start)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewInterval(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		overlaps bool
	}{
		{
			name:     "partial overlap",
			a:        mustInterval(t, 10, 0, 11, 0),
			b:        mustInterval(t, 10, 30, 11, 30),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        mustInterval(t, 9, 0, 12, 0),
			b:        mustInterval(t, 10, 0, 11, 0),
			overlaps: true,
		},
		{
			name:     "identical",
			a:        mustInterval(t, 10, 0, 11, 0),
			b:        mustInterval(t, 10, 0, 11, 0),
			overlaps: true,
		},
		{
			name:     "back to back does not overlap",
			a:        mustInterval(t, 10, 0, 11, 0),
			b:        mustInterval(t, 11, 0, 12, 0),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        mustInterval(t, 9, 0, 10, 0),
			b:        mustInterval(t, 14, 0, 15, 0),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_ContainsPoint(t *testing.T) {
	iv := mustInterval(t, 10, 0, 11, 0)

	assert.True(t, iv.ContainsPoint(iv.Start))
	assert.True(t, iv.ContainsPoint(iv.Start.Add(30*time.Minute)))
	// Правая граница полуоткрытого интервала не входит
	assert.False(t, iv.ContainsPoint(iv.End))
	assert.False(t, iv.ContainsPoint(iv.Start.Add(-time.Second)))
}

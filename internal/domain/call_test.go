package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

func TestNewCall(t *testing.T) {
	t.Run("valid call", func(t *testing.T) {
		c, err := NewCall("+1 555 123 4567", CallOutbound, "vapi")
		require.NoError(t, err)
		assert.Equal(t, CallStatusInitiated, c.Status)
		assert.Equal(t, CallOutbound, c.Direction)
	})

	t.Run("phone too short", func(t *testing.T) {
		_, err := NewCall("123", CallInbound, "vapi")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := NewCall("5551234567", CallDirection("sideways"), "vapi")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty provider", func(t *testing.T) {
		_, err := NewCall("5551234567", CallInbound, "")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCall_IsFinished(t *testing.T) {
	c := &Call{Status: CallStatusInProgress}
	assert.False(t, c.IsFinished())

	c.Status = CallStatusCompleted
	assert.True(t, c.IsFinished())

	c.Status = CallStatusFailed
	assert.True(t, c.IsFinished())
}

func TestCall_DurationSeconds(t *testing.T) {
	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	c := &Call{StartedAt: ptr.Ptr(start), EndedAt: ptr.Ptr(start.Add(90 * time.Second))}
	assert.Equal(t, int64(90), c.DurationSeconds())

	assert.Equal(t, int64(0), (&Call{StartedAt: ptr.Ptr(start)}).DurationSeconds())
	assert.Equal(t, int64(0), (&Call{}).DurationSeconds())
}

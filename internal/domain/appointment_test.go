package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

var testNow = time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

func newTestAppointment(t *testing.T, status AppointmentStatus) *Appointment {
	t.Helper()
	appt, err := NewAppointment(1, "consultation", testNow.Add(2*time.Hour), testNow.Add(3*time.Hour), nil, testNow)
	require.NoError(t, err)
	appt.Status = status
	return appt
}

func TestNewAppointment(t *testing.T) {
	start := testNow.Add(2 * time.Hour)
	end := start.Add(time.Hour)

	t.Run("valid appointment", func(t *testing.T) {
		appt, err := NewAppointment(1, "consultation", start, end, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, StatusScheduled, appt.Status)
		assert.Equal(t, Interval{Start: start, End: end}, appt.Interval())
	})

	t.Run("non-positive customer id", func(t *testing.T) {
		_, err := NewAppointment(0, "consultation", start, end, nil, testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty service type", func(t *testing.T) {
		_, err := NewAppointment(1, "", start, end, nil, testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("end not after start", func(t *testing.T) {
		_, err := NewAppointment(1, "consultation", start, start, nil, testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("start in the past", func(t *testing.T) {
		_, err := NewAppointment(1, "consultation", testNow.Add(-time.Hour), testNow, nil, testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("notes too long", func(t *testing.T) {
		notes := strings.Repeat("x", MaxNotesLength+1)
		_, err := NewAppointment(1, "consultation", start, end, ptr.Ptr(notes), testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusNoShow, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusNoShow, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			appt := newTestAppointment(t, tt.from)
			assert.Equal(t, tt.allowed, appt.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_StatusPredicates(t *testing.T) {
	assert.True(t, newTestAppointment(t, StatusScheduled).IsActive())
	assert.True(t, newTestAppointment(t, StatusConfirmed).IsActive())
	assert.False(t, newTestAppointment(t, StatusCancelled).IsActive())

	assert.True(t, newTestAppointment(t, StatusCancelled).IsTerminal())
	assert.True(t, newTestAppointment(t, StatusCompleted).IsTerminal())
	assert.True(t, newTestAppointment(t, StatusNoShow).IsTerminal())
	assert.False(t, newTestAppointment(t, StatusScheduled).IsTerminal())

	assert.True(t, newTestAppointment(t, StatusConfirmed).CanBeCancelled())
	assert.False(t, newTestAppointment(t, StatusCompleted).CanBeCancelled())

	// Перенос допустим только из scheduled
	assert.True(t, newTestAppointment(t, StatusScheduled).CanBeRescheduled())
	assert.False(t, newTestAppointment(t, StatusConfirmed).CanBeRescheduled())
}

func TestAppointment_Reschedule(t *testing.T) {
	t.Run("scheduled appointment moves", func(t *testing.T) {
		appt := newTestAppointment(t, StatusScheduled)
		newStart := testNow.Add(5 * time.Hour)
		newEnd := newStart.Add(time.Hour)

		require.NoError(t, appt.Reschedule(newStart, newEnd, testNow))
		assert.Equal(t, newStart, appt.StartTime)
		assert.Equal(t, newEnd, appt.EndTime)
		assert.Equal(t, StatusScheduled, appt.Status)
	})

	t.Run("confirmed appointment rejects reschedule", func(t *testing.T) {
		appt := newTestAppointment(t, StatusConfirmed)
		err := appt.Reschedule(testNow.Add(5*time.Hour), testNow.Add(6*time.Hour), testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("new start in the past", func(t *testing.T) {
		appt := newTestAppointment(t, StatusScheduled)
		err := appt.Reschedule(testNow.Add(-time.Hour), testNow, testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

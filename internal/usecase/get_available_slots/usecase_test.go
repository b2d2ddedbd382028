package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/internal/availability"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBackend struct {
	busy domain.BusySet
	err  error
}

func (f *fakeBackend) FetchBusyIntervals(_ context.Context, _ time.Time) (domain.BusySet, error) {
	return f.busy, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetActiveBetween(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

var testDay = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func newTestUseCase(backend *fakeBackend, repo *fakeAppointmentRepo) *UseCase {
	return NewUseCase(backend, repo, availability.DefaultWindow(), 60, nopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("all slots free", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, &fakeAppointmentRepo{})

		resp, err := uc.Execute(context.Background(), &Request{Date: testDay})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 15)
		assert.Equal(t, 60, resp.DurationMinutes)

		for _, slot := range resp.Slots {
			assert.True(t, slot.Available)
		}
		assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
		assert.Equal(t, "10:00", resp.Slots[0].EndTime.String())
	})

	t.Run("backend busy marks slots", func(t *testing.T) {
		backend := &fakeBackend{
			busy: domain.NewBusySet(domain.Interval{Start: at(10, 0), End: at(11, 0)}),
		}
		uc := newTestUseCase(backend, &fakeAppointmentRepo{})

		resp, err := uc.Execute(context.Background(), &Request{Date: testDay})
		require.NoError(t, err)

		byStart := make(map[string]bool, len(resp.Slots))
		for _, slot := range resp.Slots {
			byStart[slot.StartTime.String()] = slot.Available
		}

		assert.True(t, byStart["09:00"])
		assert.False(t, byStart["09:30"])
		assert.False(t, byStart["10:00"])
		assert.False(t, byStart["10:30"])
		assert.True(t, byStart["11:00"])
	})

	t.Run("local appointments add to busy", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				{StartTime: at(14, 0), EndTime: at(15, 0), Status: domain.StatusScheduled},
			},
		}
		uc := newTestUseCase(&fakeBackend{}, repo)

		resp, err := uc.Execute(context.Background(), &Request{Date: testDay})
		require.NoError(t, err)

		for _, slot := range resp.Slots {
			if slot.StartTime.String() == "14:00" {
				assert.False(t, slot.Available)
			}
		}
	})

	t.Run("custom duration shortens slot", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, &fakeAppointmentRepo{})

		resp, err := uc.Execute(context.Background(), &Request{Date: testDay, DurationMinutes: 30})
		require.NoError(t, err)
		// 30-минутные слоты: старты с 9:00 по 16:30
		assert.Len(t, resp.Slots, 16)
		assert.Equal(t, "09:30", resp.Slots[0].EndTime.String())
	})

	t.Run("backend failure", func(t *testing.T) {
		backend := &fakeBackend{err: errors.New("connection refused")}
		uc := newTestUseCase(backend, &fakeAppointmentRepo{})

		_, err := uc.Execute(context.Background(), &Request{Date: testDay})
		assert.ErrorIs(t, err, ErrBackendUnavailable)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeAppointmentRepo{err: errors.New("db down")}
		uc := newTestUseCase(&fakeBackend{}, repo)

		_, err := uc.Execute(context.Background(), &Request{Date: testDay})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, &fakeAppointmentRepo{})

		_, err := uc.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{Date: testDay, DurationMinutes: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{Date: testDay, DurationMinutes: domain.MaxDurationMinutes + 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

package assistant

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createUC "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
	slotsUC "github.com/callassist/CallAssist-BookingService/internal/usecase/get_available_slots"
	"github.com/callassist/CallAssist-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotsUseCase struct {
	resp *slotsUC.Response
	err  error

	gotReq *slotsUC.Request
}

func (f *fakeSlotsUseCase) Execute(_ context.Context, req *slotsUC.Request) (*slotsUC.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type fakeCreateUseCase struct {
	resp *createUC.Response
	err  error

	gotReq *createUC.Request
}

func (f *fakeCreateUseCase) Execute(_ context.Context, req *createUC.Request) (*createUC.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func newTestDispatcher(slots *fakeSlotsUseCase, create *fakeCreateUseCase) *Dispatcher {
	catalog := []ServiceInfo{
		{Name: "Consultation", DurationMinutes: 30, Price: 50},
	}
	return NewDispatcher(slots, create, catalog, nopLogger{})
}

func TestDispatcher_CheckAvailability(t *testing.T) {
	t.Run("returns only available times", func(t *testing.T) {
		slots := &fakeSlotsUseCase{
			resp: &slotsUC.Response{
				Slots: []slotsUC.SlotInfo{
					{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00"), Available: true},
					{StartTime: types.TimeString("09:30"), EndTime: types.TimeString("10:30"), Available: false},
					{StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00"), Available: true},
				},
			},
		}
		d := newTestDispatcher(slots, &fakeCreateUseCase{})

		result, err := d.Dispatch(context.Background(), FunctionCheckAvailability,
			json.RawMessage(`{"date":"2026-09-10","durationMinutes":60}`))
		require.NoError(t, err)

		avail, ok := result.(availabilityResult)
		require.True(t, ok)
		assert.Equal(t, "2026-09-10", avail.Date)
		assert.Equal(t, []string{"09:00", "10:00"}, avail.AvailableTimes)

		assert.Equal(t, 60, slots.gotReq.DurationMinutes)
		assert.Equal(t, 2026, slots.gotReq.Date.Year())
	})

	t.Run("malformed date", func(t *testing.T) {
		d := newTestDispatcher(&fakeSlotsUseCase{}, &fakeCreateUseCase{})

		_, err := d.Dispatch(context.Background(), FunctionCheckAvailability,
			json.RawMessage(`{"date":"tomorrow"}`))
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("usecase validation error maps to invalid arguments", func(t *testing.T) {
		slots := &fakeSlotsUseCase{err: slotsUC.ErrInvalidInput}
		d := newTestDispatcher(slots, &fakeCreateUseCase{})

		_, err := d.Dispatch(context.Background(), FunctionCheckAvailability,
			json.RawMessage(`{"date":"2026-09-10"}`))
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})
}

func TestDispatcher_BookAppointment(t *testing.T) {
	t.Run("books and reports appointment", func(t *testing.T) {
		start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.Local)
		create := &fakeCreateUseCase{
			resp: &createUC.Response{ID: 5, StartTime: start, Status: "scheduled"},
		}
		d := newTestDispatcher(&fakeSlotsUseCase{}, create)

		args := `{"firstName":"John","lastName":"Smith","phone":"5551234567",` +
			`"serviceType":"consultation","date":"2026-09-10","time":"14:00"}`
		result, err := d.Dispatch(context.Background(), FunctionBookAppointment, json.RawMessage(args))
		require.NoError(t, err)

		booking, ok := result.(bookingResult)
		require.True(t, ok)
		assert.Equal(t, int64(5), booking.AppointmentID)
		assert.Equal(t, "scheduled", booking.Status)

		assert.Equal(t, start, create.gotReq.StartTime)
		assert.Equal(t, "John", create.gotReq.FirstName)
	})

	t.Run("malformed time", func(t *testing.T) {
		d := newTestDispatcher(&fakeSlotsUseCase{}, &fakeCreateUseCase{})

		args := `{"firstName":"John","lastName":"Smith","phone":"5551234567",` +
			`"serviceType":"consultation","date":"2026-09-10","time":"2pm"}`
		_, err := d.Dispatch(context.Background(), FunctionBookAppointment, json.RawMessage(args))
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("slot conflict is passed through", func(t *testing.T) {
		create := &fakeCreateUseCase{err: createUC.ErrSlotNotAvailable}
		d := newTestDispatcher(&fakeSlotsUseCase{}, create)

		args := `{"firstName":"John","lastName":"Smith","phone":"5551234567",` +
			`"serviceType":"consultation","date":"2026-09-10","time":"14:00"}`
		_, err := d.Dispatch(context.Background(), FunctionBookAppointment, json.RawMessage(args))
		assert.ErrorIs(t, err, createUC.ErrSlotNotAvailable)
	})
}

func TestDispatcher_GetServices(t *testing.T) {
	d := newTestDispatcher(&fakeSlotsUseCase{}, &fakeCreateUseCase{})

	result, err := d.Dispatch(context.Background(), FunctionGetServices, nil)
	require.NoError(t, err)

	catalog, ok := result.([]ServiceInfo)
	require.True(t, ok)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Consultation", catalog[0].Name)
}

func TestDispatcher_UnknownFunction(t *testing.T) {
	d := newTestDispatcher(&fakeSlotsUseCase{}, &fakeCreateUseCase{})

	_, err := d.Dispatch(context.Background(), "transfer_money", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

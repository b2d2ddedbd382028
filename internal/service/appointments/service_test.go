package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	appointmentRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/appointment"
	"github.com/callassist/CallAssist-BookingService/internal/scheduling"
	"github.com/callassist/CallAssist-BookingService/internal/service/appointments/models"
	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointmentRepo struct {
	byID   map[int64]*domain.Appointment
	active []*domain.Appointment

	cancelled    []int64
	rescheduled  []int64
	statusUpdate map[int64]domain.AppointmentStatus
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{
		byID:         make(map[int64]*domain.Appointment),
		statusUpdate: make(map[int64]domain.AppointmentStatus),
	}
	for _, appt := range appts {
		r.byID[appt.ID] = appt
	}
	return r
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range f.byID {
		if appt.CustomerID != customerID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetActiveBetween(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return f.active, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, _ *string, _ time.Time) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeAppointmentRepo) Reschedule(_ context.Context, id int64, _, _ time.Time) error {
	f.rescheduled = append(f.rescheduled, id)
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.statusUpdate[id] = status
	return nil
}

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	return &domain.Customer{ID: id, FirstName: "John", LastName: "Smith", Phone: "5551234567"}, nil
}

type fakeBackend struct {
	busy domain.BusySet

	cancelErr     error
	rescheduleErr error

	cancelledIDs   []string
	rescheduledIDs []string
}

func (f *fakeBackend) CancelBooking(_ context.Context, externalID string, _ string) error {
	f.cancelledIDs = append(f.cancelledIDs, externalID)
	return f.cancelErr
}

func (f *fakeBackend) RescheduleBooking(_ context.Context, externalID string, _, _ time.Time) error {
	f.rescheduledIDs = append(f.rescheduledIDs, externalID)
	return f.rescheduleErr
}

func (f *fakeBackend) FetchBusyIntervals(_ context.Context, _ time.Time) (domain.BusySet, error) {
	return f.busy, nil
}

type fakeNotifier struct {
	events []automation.Event
}

func (f *fakeNotifier) Notify(_ context.Context, event automation.Event) error {
	f.events = append(f.events, event)
	return nil
}

func futureStart() time.Time {
	return time.Now().Add(48 * time.Hour).Truncate(time.Hour)
}

func scheduledAppointment(id int64, start time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		CustomerID:  7,
		ServiceType: "consultation",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      domain.StatusScheduled,
		ExternalID:  ptr.Ptr("ext-1"),
		Backend:     ptr.Ptr("calcom"),
	}
}

func newTestService(repo *fakeAppointmentRepo, backend *fakeBackend, notifier *fakeNotifier) *Service {
	return NewService(repo, fakeCustomerRepo{}, backend, notifier, nopLogger{})
}

func TestService_Cancel(t *testing.T) {
	t.Run("cancels external booking and local record", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		repo := newFakeAppointmentRepo(appt)
		backend := &fakeBackend{}
		notifier := &fakeNotifier{}
		svc := newTestService(repo, backend, notifier)

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{Reason: ptr.Ptr("customer request")})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, []string{"ext-1"}, backend.cancelledIDs)
		assert.Equal(t, []int64{1}, repo.cancelled)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, automation.EventAppointmentCancelled, notifier.events[0].Type)
		assert.Equal(t, "customer request", notifier.events[0].Reason)
	})

	t.Run("appointment without external booking cancels locally", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		appt.ExternalID = nil
		repo := newFakeAppointmentRepo(appt)
		backend := &fakeBackend{}
		svc := newTestService(repo, backend, &fakeNotifier{})

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		require.NoError(t, err)
		assert.Empty(t, backend.cancelledIDs)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("already cancelled appointment", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		appt.Status = domain.StatusCancelled
		svc := newTestService(newFakeAppointmentRepo(appt), &fakeBackend{}, &fakeNotifier{})

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(), &fakeBackend{}, &fakeNotifier{})

		_, err := svc.Cancel(context.Background(), 99, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		backend := &fakeBackend{cancelErr: scheduling.ErrProvider}
		repo := newFakeAppointmentRepo(appt)
		svc := newTestService(repo, backend, &fakeNotifier{})

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrBackendUnavailable)
		assert.Empty(t, repo.cancelled)
	})
}

func TestService_Reschedule(t *testing.T) {
	t.Run("moves to free slot", func(t *testing.T) {
		start := futureStart()
		appt := scheduledAppointment(1, start)
		repo := newFakeAppointmentRepo(appt)
		backend := &fakeBackend{}
		notifier := &fakeNotifier{}
		svc := newTestService(repo, backend, notifier)

		newStart := start.Add(3 * time.Hour)
		resp, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{NewStartTime: newStart})
		require.NoError(t, err)

		assert.Equal(t, newStart, resp.StartTime)
		// Нулевая длительность в запросе сохраняет текущую
		assert.Equal(t, newStart.Add(time.Hour), resp.EndTime)
		assert.Equal(t, []string{"ext-1"}, backend.rescheduledIDs)
		assert.Equal(t, []int64{1}, repo.rescheduled)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, automation.EventAppointmentRescheduled, notifier.events[0].Type)
	})

	t.Run("own interval does not count as conflict", func(t *testing.T) {
		start := futureStart()
		appt := scheduledAppointment(1, start)
		repo := newFakeAppointmentRepo(appt)
		repo.active = []*domain.Appointment{appt}
		// Бэкенд отдает занятость, включающую собственную бронь записи
		backend := &fakeBackend{
			busy: domain.NewBusySet(domain.Interval{Start: start, End: start.Add(time.Hour)}),
		}
		svc := newTestService(repo, backend, &fakeNotifier{})

		// Перенос на 30 минут позже пересекается со старым интервалом записи
		newStart := start.Add(30 * time.Minute)
		_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{NewStartTime: newStart})
		assert.NoError(t, err)
	})

	t.Run("foreign busy interval blocks move", func(t *testing.T) {
		start := futureStart()
		appt := scheduledAppointment(1, start)
		newStart := start.Add(3 * time.Hour)
		backend := &fakeBackend{
			busy: domain.NewBusySet(domain.Interval{Start: newStart, End: newStart.Add(time.Hour)}),
		}
		svc := newTestService(newFakeAppointmentRepo(appt), backend, &fakeNotifier{})

		_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{NewStartTime: newStart})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("confirmed appointment cannot be rescheduled", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		appt.Status = domain.StatusConfirmed
		svc := newTestService(newFakeAppointmentRepo(appt), &fakeBackend{}, &fakeNotifier{})

		_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{NewStartTime: futureStart().Add(3 * time.Hour)})
		assert.ErrorIs(t, err, ErrCannotReschedule)
	})

	t.Run("backend reports slot taken", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		backend := &fakeBackend{rescheduleErr: scheduling.ErrSlotTaken}
		svc := newTestService(newFakeAppointmentRepo(appt), backend, &fakeNotifier{})

		_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{NewStartTime: futureStart().Add(3 * time.Hour)})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("missing new start time", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(), &fakeBackend{}, &fakeNotifier{})

		_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Confirm(t *testing.T) {
	t.Run("scheduled appointment confirms", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		repo := newFakeAppointmentRepo(appt)
		svc := newTestService(repo, &fakeBackend{}, &fakeNotifier{})

		resp, err := svc.Confirm(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.statusUpdate[1])
	})

	t.Run("cancelled appointment cannot confirm", func(t *testing.T) {
		appt := scheduledAppointment(1, futureStart())
		appt.Status = domain.StatusCancelled
		svc := newTestService(newFakeAppointmentRepo(appt), &fakeBackend{}, &fakeNotifier{})

		_, err := svc.Confirm(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetCustomerAppointments(t *testing.T) {
	start := futureStart()
	first := scheduledAppointment(1, start)
	second := scheduledAppointment(2, start.Add(2*time.Hour))
	second.Status = domain.StatusCancelled
	repo := newFakeAppointmentRepo(first, second)
	svc := newTestService(repo, &fakeBackend{}, &fakeNotifier{})

	t.Run("all statuses", func(t *testing.T) {
		resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{CustomerID: 7})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("filtered by status", func(t *testing.T) {
		resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
			CustomerID: 7,
			Status:     ptr.Ptr("cancelled"),
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, string(domain.StatusCancelled), resp.Appointments[0].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
			CustomerID: 7,
			Status:     ptr.Ptr("vanished"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByID(t *testing.T) {
	appt := scheduledAppointment(1, futureStart())
	svc := newTestService(newFakeAppointmentRepo(appt), &fakeBackend{}, &fakeNotifier{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
}

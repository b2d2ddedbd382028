package calls

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	callRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/call"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
	"github.com/callassist/CallAssist-BookingService/internal/voiceai"
	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCallRepo struct {
	byID         map[int64]*domain.Call
	byExternalID map[string]*domain.Call
	counts       map[domain.CallStatus]int64

	finished []int64
	linked   map[int64]int64
	nextID   int64
}

func newFakeCallRepo() *fakeCallRepo {
	return &fakeCallRepo{
		byID:         make(map[int64]*domain.Call),
		byExternalID: make(map[string]*domain.Call),
		linked:       make(map[int64]int64),
		nextID:       1,
	}
}

func (f *fakeCallRepo) Create(_ context.Context, c *domain.Call) (*domain.Call, error) {
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = c
	if c.ExternalID != nil {
		f.byExternalID[*c.ExternalID] = c
	}
	return c, nil
}

func (f *fakeCallRepo) GetByID(_ context.Context, id int64) (*domain.Call, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, callRepo.ErrCallNotFound
	}
	return c, nil
}

func (f *fakeCallRepo) GetByExternalID(_ context.Context, externalID string) (*domain.Call, error) {
	c, ok := f.byExternalID[externalID]
	if !ok {
		return nil, callRepo.ErrCallNotFound
	}
	return c, nil
}

func (f *fakeCallRepo) Finish(_ context.Context, id int64, _ domain.CallStatus, _ *string, _, _ *time.Time) error {
	if _, ok := f.byID[id]; !ok {
		return callRepo.ErrCallNotFound
	}
	f.finished = append(f.finished, id)
	return nil
}

func (f *fakeCallRepo) LinkAppointment(_ context.Context, id, appointmentID int64) error {
	if _, ok := f.byID[id]; !ok {
		return callRepo.ErrCallNotFound
	}
	f.linked[id] = appointmentID
	return nil
}

func (f *fakeCallRepo) ListBetween(_ context.Context, _, _ time.Time) ([]*domain.Call, error) {
	return nil, nil
}

func (f *fakeCallRepo) CountByStatusBetween(_ context.Context, _, _ time.Time) (map[domain.CallStatus]int64, error) {
	return f.counts, nil
}

type fakeAppointmentRepo struct {
	counts map[domain.AppointmentStatus]int64
}

func (f *fakeAppointmentRepo) CountByStatusBetween(_ context.Context, _, _ time.Time) (map[domain.AppointmentStatus]int64, error) {
	return f.counts, nil
}

type fakeDialer struct {
	externalID string
	callErr    error

	info    voiceai.CallInfo
	infoErr error
}

func (f *fakeDialer) InitiateCall(_ context.Context, _ string) (string, error) {
	return f.externalID, f.callErr
}

func (f *fakeDialer) GetCallInfo(_ context.Context, _ string) (voiceai.CallInfo, error) {
	return f.info, f.infoErr
}

type fakeNotifier struct {
	events []automation.Event
}

func (f *fakeNotifier) Notify(_ context.Context, event automation.Event) error {
	f.events = append(f.events, event)
	return nil
}

func newTestService(repo *fakeCallRepo, appts *fakeAppointmentRepo, dialer *fakeDialer, notifier *fakeNotifier) *Service {
	return NewService(repo, appts, dialer, "vapi", notifier, nopLogger{})
}

func TestService_InitiateCall(t *testing.T) {
	t.Run("places outbound call", func(t *testing.T) {
		repo := newFakeCallRepo()
		dialer := &fakeDialer{externalID: "call-1"}
		svc := newTestService(repo, &fakeAppointmentRepo{}, dialer, &fakeNotifier{})

		resp, err := svc.InitiateCall(context.Background(), &models.InitiateCallRequest{Phone: "+1 555 123 4567"})
		require.NoError(t, err)

		assert.Equal(t, string(domain.CallOutbound), resp.Direction)
		assert.Equal(t, "vapi", resp.Provider)
		require.NotNil(t, resp.ExternalID)
		assert.Equal(t, "call-1", *resp.ExternalID)
		assert.NotNil(t, resp.StartedAt)
	})

	t.Run("short phone", func(t *testing.T) {
		svc := newTestService(newFakeCallRepo(), &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

		_, err := svc.InitiateCall(context.Background(), &models.InitiateCallRequest{Phone: "123"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("provider failure", func(t *testing.T) {
		dialer := &fakeDialer{callErr: errors.New("timeout")}
		svc := newTestService(newFakeCallRepo(), &fakeAppointmentRepo{}, dialer, &fakeNotifier{})

		_, err := svc.InitiateCall(context.Background(), &models.InitiateCallRequest{Phone: "5551234567"})
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestService_RecordInbound(t *testing.T) {
	repo := newFakeCallRepo()
	svc := newTestService(repo, &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

	resp, err := svc.RecordInbound(context.Background(), "5551234567", "retell", "ret-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.CallInbound), resp.Direction)
	assert.Equal(t, "retell", resp.Provider)
	assert.Equal(t, string(domain.CallStatusInProgress), resp.Status)
	require.NotNil(t, resp.ExternalID)
	assert.Equal(t, "ret-1", *resp.ExternalID)
}

func TestService_FinishByExternalID(t *testing.T) {
	t.Run("marks call finished and notifies", func(t *testing.T) {
		repo := newFakeCallRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, &fakeAppointmentRepo{}, &fakeDialer{}, notifier)

		_, err := svc.RecordInbound(context.Background(), "5551234567", "vapi", "call-9")
		require.NoError(t, err)

		resp, err := svc.FinishByExternalID(context.Background(), &models.FinishCallRequest{
			ExternalID: "call-9",
			Status:     domain.CallStatusCompleted,
			Transcript: ptr.Ptr("hello"),
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.CallStatusCompleted), resp.Status)
		require.NotNil(t, resp.Transcript)
		assert.Equal(t, "hello", *resp.Transcript)
		assert.Len(t, repo.finished, 1)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, automation.EventCallCompleted, notifier.events[0].Type)
	})

	t.Run("unknown external id", func(t *testing.T) {
		svc := newTestService(newFakeCallRepo(), &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

		_, err := svc.FinishByExternalID(context.Background(), &models.FinishCallRequest{
			ExternalID: "missing",
			Status:     domain.CallStatusCompleted,
		})
		assert.ErrorIs(t, err, ErrCallNotFound)
	})
}

func TestService_GetByID(t *testing.T) {
	t.Run("finished call is returned as is", func(t *testing.T) {
		repo := newFakeCallRepo()
		dialer := &fakeDialer{infoErr: errors.New("should not be called")}
		svc := newTestService(repo, &fakeAppointmentRepo{}, dialer, &fakeNotifier{})

		call := &domain.Call{Phone: "5551234567", Direction: domain.CallInbound, Provider: "vapi",
			Status: domain.CallStatusCompleted, ExternalID: ptr.Ptr("done-1")}
		_, err := repo.Create(context.Background(), call)
		require.NoError(t, err)

		resp, err := svc.GetByID(context.Background(), call.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.CallStatusCompleted), resp.Status)
	})

	t.Run("unfinished call refreshes from provider", func(t *testing.T) {
		repo := newFakeCallRepo()
		dialer := &fakeDialer{info: voiceai.CallInfo{Status: voiceai.StatusCompleted, Transcript: "bye"}}
		svc := newTestService(repo, &fakeAppointmentRepo{}, dialer, &fakeNotifier{})

		call := &domain.Call{Phone: "5551234567", Direction: domain.CallOutbound, Provider: "vapi",
			Status: domain.CallStatusInProgress, ExternalID: ptr.Ptr("live-1")}
		_, err := repo.Create(context.Background(), call)
		require.NoError(t, err)

		resp, err := svc.GetByID(context.Background(), call.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.CallStatusCompleted), resp.Status)
		assert.Len(t, repo.finished, 1)
	})

	t.Run("provider failure does not hide local state", func(t *testing.T) {
		repo := newFakeCallRepo()
		dialer := &fakeDialer{infoErr: errors.New("provider down")}
		svc := newTestService(repo, &fakeAppointmentRepo{}, dialer, &fakeNotifier{})

		call := &domain.Call{Phone: "5551234567", Direction: domain.CallOutbound, Provider: "vapi",
			Status: domain.CallStatusInProgress, ExternalID: ptr.Ptr("live-2")}
		_, err := repo.Create(context.Background(), call)
		require.NoError(t, err)

		resp, err := svc.GetByID(context.Background(), call.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.CallStatusInProgress), resp.Status)
	})

	t.Run("unknown call", func(t *testing.T) {
		svc := newTestService(newFakeCallRepo(), &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrCallNotFound)
	})
}

func TestService_GetAnalytics(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("computes conversion rate", func(t *testing.T) {
		repo := newFakeCallRepo()
		repo.counts = map[domain.CallStatus]int64{
			domain.CallStatusCompleted: 8,
			domain.CallStatusFailed:    2,
		}
		appts := &fakeAppointmentRepo{counts: map[domain.AppointmentStatus]int64{
			domain.StatusScheduled: 3,
			domain.StatusCancelled: 1,
		}}
		svc := newTestService(repo, appts, &fakeDialer{}, &fakeNotifier{})

		resp, err := svc.GetAnalytics(context.Background(), &models.AnalyticsRequest{From: from, To: to})
		require.NoError(t, err)

		assert.Equal(t, int64(10), resp.TotalCalls)
		assert.Equal(t, int64(4), resp.TotalBookings)
		assert.InDelta(t, 0.4, resp.ConversionRate, 1e-9)
		assert.Equal(t, int64(8), resp.CallsByStatus["completed"])
		assert.Equal(t, int64(3), resp.ByBookingState["scheduled"])
	})

	t.Run("no calls means zero rate", func(t *testing.T) {
		svc := newTestService(newFakeCallRepo(), &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

		resp, err := svc.GetAnalytics(context.Background(), &models.AnalyticsRequest{From: from, To: to})
		require.NoError(t, err)
		assert.Zero(t, resp.ConversionRate)
	})

	t.Run("invalid period", func(t *testing.T) {
		svc := newTestService(newFakeCallRepo(), &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

		_, err := svc.GetAnalytics(context.Background(), &models.AnalyticsRequest{From: to, To: from})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_LinkAppointment(t *testing.T) {
	repo := newFakeCallRepo()
	svc := newTestService(repo, &fakeAppointmentRepo{}, &fakeDialer{}, &fakeNotifier{})

	call := &domain.Call{Phone: "5551234567", Direction: domain.CallInbound, Provider: "vapi",
		Status: domain.CallStatusInProgress}
	_, err := repo.Create(context.Background(), call)
	require.NoError(t, err)

	require.NoError(t, svc.LinkAppointment(context.Background(), call.ID, 5))
	assert.Equal(t, int64(5), repo.linked[call.ID])

	assert.ErrorIs(t, svc.LinkAppointment(context.Background(), 99, 5), ErrCallNotFound)
}

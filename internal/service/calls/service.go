package calls

import (
	"context"
	"errors"
	"fmt"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	callRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/call"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
	"github.com/callassist/CallAssist-BookingService/internal/voiceai"
	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

// Service сервис журнала звонков
type Service struct {
	callRepo        CallRepository
	appointmentRepo AppointmentRepository
	dialer          Dialer
	providerName    string
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса звонков
func NewService(
	callRepo CallRepository,
	appointmentRepo AppointmentRepository,
	dialer Dialer,
	providerName string,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		callRepo:        callRepo,
		appointmentRepo: appointmentRepo,
		dialer:          dialer,
		providerName:    providerName,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// InitiateCall начинает исходящий звонок и регистрирует его в журнале
func (s *Service) InitiateCall(ctx context.Context, req *models.InitiateCallRequest) (*models.CallResponse, error) {
	s.logger.Info("InitiateCall: calling %s via %s", domain.CleanPhone(req.Phone), s.providerName)

	call, err := domain.NewCall(req.Phone, domain.CallOutbound, s.providerName)
	if err != nil {
		s.logger.Warn("InitiateCall: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	externalID, err := s.dialer.InitiateCall(ctx, req.Phone)
	if err != nil {
		s.logger.Error("InitiateCall: provider call failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	now := s.timeProvider.Now()
	call.ExternalID = ptr.Ptr(externalID)
	call.StartedAt = &now

	created, err := s.callRepo.Create(ctx, call)
	if err != nil {
		s.logger.Error("InitiateCall: failed to persist call external_id=%s: %v", externalID, err)
		return nil, fmt.Errorf("%w: InitiateCall - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("InitiateCall: call id=%d external_id=%s initiated", created.ID, externalID)
	return models.FromDomainCall(created), nil
}

// GetByID получает звонок. Для незавершенного звонка состояние
// обновляется из голосового провайдера.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CallResponse, error) {
	call, err := s.callRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, callRepo.ErrCallNotFound) {
			s.logger.Warn("GetByID: call id=%d not found", id)
			return nil, ErrCallNotFound
		}
		s.logger.Error("GetByID: repository error for call id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !call.IsFinished() && call.ExternalID != nil {
		s.refreshFromProvider(ctx, call)
	}

	return models.FromDomainCall(call), nil
}

// RecordInbound регистрирует входящий звонок в журнале.
// Используется обработчиками вебхуков голосовых провайдеров.
func (s *Service) RecordInbound(ctx context.Context, phone, provider, externalID string) (*models.CallResponse, error) {
	s.logger.Info("RecordInbound: inbound call from %s via %s", domain.CleanPhone(phone), provider)

	call, err := domain.NewCall(phone, domain.CallInbound, provider)
	if err != nil {
		s.logger.Warn("RecordInbound: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now()
	call.Status = domain.CallStatusInProgress
	call.StartedAt = &now
	if externalID != "" {
		call.ExternalID = ptr.Ptr(externalID)
	}

	created, err := s.callRepo.Create(ctx, call)
	if err != nil {
		s.logger.Error("RecordInbound: failed to persist call: %v", err)
		return nil, fmt.Errorf("%w: RecordInbound - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCall(created), nil
}

// FinishByExternalID помечает звонок завершенным по идентификатору
// провайдера и сохраняет итоговые данные
func (s *Service) FinishByExternalID(ctx context.Context, req *models.FinishCallRequest) (*models.CallResponse, error) {
	s.logger.Info("FinishByExternalID: finishing call external_id=%s status=%s", req.ExternalID, req.Status)

	call, err := s.callRepo.GetByExternalID(ctx, req.ExternalID)
	if err != nil {
		if errors.Is(err, callRepo.ErrCallNotFound) {
			s.logger.Warn("FinishByExternalID: call external_id=%s not found", req.ExternalID)
			return nil, ErrCallNotFound
		}
		s.logger.Error("FinishByExternalID: repository error: %v", err)
		return nil, fmt.Errorf("%w: FinishByExternalID - repository error: %v", ErrInternal, err)
	}

	if err := s.callRepo.Finish(ctx, call.ID, req.Status, req.Transcript, req.StartedAt, req.EndedAt); err != nil {
		s.logger.Error("FinishByExternalID: failed to finish call id=%d: %v", call.ID, err)
		return nil, fmt.Errorf("%w: FinishByExternalID - repository error: %v", ErrInternal, err)
	}

	call.Status = req.Status
	if req.Transcript != nil {
		call.Transcript = req.Transcript
	}
	if req.StartedAt != nil {
		call.StartedAt = req.StartedAt
	}
	if req.EndedAt != nil {
		call.EndedAt = req.EndedAt
	}

	s.logger.Info("FinishByExternalID: call id=%d finished with status=%s", call.ID, req.Status)

	// Событие автоматизации о завершении звонка (best-effort)
	event := automation.Event{
		Type:          automation.EventCallCompleted,
		CustomerPhone: call.Phone,
		OccurredAt:    s.timeProvider.Now(),
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("FinishByExternalID: automation delivery failed: %v", err)
	}

	return models.FromDomainCall(call), nil
}

// LinkAppointment связывает звонок с созданной во время него записью
func (s *Service) LinkAppointment(ctx context.Context, callID, appointmentID int64) error {
	if err := s.callRepo.LinkAppointment(ctx, callID, appointmentID); err != nil {
		if errors.Is(err, callRepo.ErrCallNotFound) {
			return ErrCallNotFound
		}
		return fmt.Errorf("%w: LinkAppointment - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetAnalytics возвращает сводку по звонкам и записям за период
func (s *Service) GetAnalytics(ctx context.Context, req *models.AnalyticsRequest) (*models.AnalyticsResponse, error) {
	if !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	s.logger.Info("GetAnalytics: period %s - %s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	callCounts, err := s.callRepo.CountByStatusBetween(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("GetAnalytics: failed to count calls: %v", err)
		return nil, fmt.Errorf("%w: GetAnalytics - repository error: %v", ErrInternal, err)
	}

	apptCounts, err := s.appointmentRepo.CountByStatusBetween(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("GetAnalytics: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: GetAnalytics - repository error: %v", ErrInternal, err)
	}

	resp := &models.AnalyticsResponse{
		From:           req.From,
		To:             req.To,
		CallsByStatus:  make(map[string]int64, len(callCounts)),
		ByBookingState: make(map[string]int64, len(apptCounts)),
	}

	for status, count := range callCounts {
		resp.CallsByStatus[string(status)] = count
		resp.TotalCalls += count
	}
	for status, count := range apptCounts {
		resp.ByBookingState[string(status)] = count
		resp.TotalBookings += count
	}

	if resp.TotalCalls > 0 {
		resp.ConversionRate = float64(resp.TotalBookings) / float64(resp.TotalCalls)
	}

	return resp, nil
}

// refreshFromProvider подтягивает актуальное состояние звонка из провайдера.
// Ошибка провайдера не мешает отдать локальное состояние.
func (s *Service) refreshFromProvider(ctx context.Context, call *domain.Call) {
	info, err := s.dialer.GetCallInfo(ctx, *call.ExternalID)
	if err != nil {
		s.logger.Warn("refreshFromProvider: failed to refresh call id=%d: %v", call.ID, err)
		return
	}

	status := mapProviderStatus(info.Status)
	if status == call.Status {
		return
	}

	var transcript *string
	if info.Transcript != "" {
		transcript = ptr.Ptr(info.Transcript)
	}

	if err := s.callRepo.Finish(ctx, call.ID, status, transcript, info.StartedAt, info.EndedAt); err != nil {
		s.logger.Warn("refreshFromProvider: failed to store refreshed state for call id=%d: %v", call.ID, err)
		return
	}

	call.Status = status
	if transcript != nil {
		call.Transcript = transcript
	}
	if info.StartedAt != nil {
		call.StartedAt = info.StartedAt
	}
	if info.EndedAt != nil {
		call.EndedAt = info.EndedAt
	}
}

func mapProviderStatus(status voiceai.CallStatus) domain.CallStatus {
	switch status {
	case voiceai.StatusQueued:
		return domain.CallStatusInitiated
	case voiceai.StatusInProgress:
		return domain.CallStatusInProgress
	case voiceai.StatusCompleted:
		return domain.CallStatusCompleted
	default:
		return domain.CallStatusFailed
	}
}

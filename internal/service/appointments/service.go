package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/availability"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	appointmentRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/appointment"
	"github.com/callassist/CallAssist-BookingService/internal/scheduling"
	"github.com/callassist/CallAssist-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием
type Service struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	backend         SchedulingBackend
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	backend SchedulingBackend,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		backend:         backend,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает записи клиента.
// Опционально фильтрует по статусу.
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись. Отмена во внешнем бэкенде идемпотентна:
// уже отмененная там бронь не считается ошибкой.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", id, appt.Status)
		return nil, ErrCannotCancel
	}

	// 1. Отменяем бронь во внешнем бэкенде
	if appt.ExternalID != nil {
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}

		if err := s.backend.CancelBooking(ctx, *appt.ExternalID, reason); err != nil {
			s.logger.Error("Cancel: backend cancellation failed for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: backend cancellation failed: %v", ErrBackendUnavailable, err)
		}
	} else {
		s.logger.Warn("Cancel: appointment id=%d has no external booking, cancelling locally only", id)
	}

	// 2. Помечаем запись отмененной в локальном журнале
	now := s.timeProvider.Now()
	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason, now); err != nil {
		s.logger.Error("Cancel: failed to mark appointment id=%d cancelled: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	appt.CancellationReason = req.Reason
	appt.CancelledAt = &now

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)

	// 3. Отправляем событие автоматизации (best-effort)
	s.notify(ctx, automation.EventAppointmentCancelled, appt, now, req.Reason)

	return models.FromDomainAppointment(appt), nil
}

// Reschedule переносит запись на новое время. Перенос возможен только для
// записей в статусе scheduled; новое время проверяется по свежей занятости.
func (s *Service) Reschedule(ctx context.Context, id int64, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: rescheduling appointment id=%d to %s", id, req.NewStartTime.Format(time.RFC3339))

	if req.NewStartTime.IsZero() {
		return nil, fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes out of range", ErrInvalidInput)
	}

	appt, err := s.getAppointment(ctx, id, "Reschedule")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeRescheduled() {
		s.logger.Warn("Reschedule: appointment id=%d in status %s cannot be rescheduled", id, appt.Status)
		return nil, ErrCannotReschedule
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	if duration == 0 {
		duration = appt.EndTime.Sub(appt.StartTime)
	}
	newEnd := req.NewStartTime.Add(duration)
	oldInterval := appt.Interval()

	now := s.timeProvider.Now()
	candidate := domain.Interval{Start: req.NewStartTime, End: newEnd}

	// 1. Проверяем новое время по свежей занятости.
	// Собственный старый интервал записи исключается из проверки, иначе
	// перенос внутри того же окна всегда считался бы конфликтом.
	busy, err := s.busyExcludingOwn(ctx, req.NewStartTime, id, oldInterval)
	if err != nil {
		return nil, err
	}

	if !availability.IsFree(candidate, busy) {
		s.logger.Warn("Reschedule: new slot %s is not available for appointment id=%d", candidate, id)
		return nil, ErrSlotNotAvailable
	}

	// 2. Валидируем перенос доменными правилами
	if err := appt.Reschedule(req.NewStartTime, newEnd, now); err != nil {
		s.logger.Warn("Reschedule: domain validation failed for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Переносим бронь во внешнем бэкенде
	if appt.ExternalID != nil {
		if err := s.backend.RescheduleBooking(ctx, *appt.ExternalID, req.NewStartTime, newEnd); err != nil {
			switch {
			case errors.Is(err, scheduling.ErrSlotTaken):
				s.logger.Warn("Reschedule: backend reports slot taken for appointment id=%d", id)
				return nil, ErrSlotNotAvailable
			case errors.Is(err, scheduling.ErrBookingNotFound):
				s.logger.Error("Reschedule: external booking missing for appointment id=%d", id)
				return nil, fmt.Errorf("%w: external booking not found", ErrInternal)
			default:
				s.logger.Error("Reschedule: backend reschedule failed for appointment id=%d: %v", id, err)
				return nil, fmt.Errorf("%w: backend reschedule failed: %v", ErrBackendUnavailable, err)
			}
		}
	}

	// 4. Обновляем локальный журнал
	if err := s.appointmentRepo.Reschedule(ctx, id, req.NewStartTime, newEnd); err != nil {
		s.logger.Error("Reschedule: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: successfully rescheduled appointment id=%d", id)

	// 5. Отправляем событие автоматизации (best-effort)
	s.notify(ctx, automation.EventAppointmentRescheduled, appt, now, nil)

	return models.FromDomainAppointment(appt), nil
}

// Confirm помечает запись подтвержденной
func (s *Service) Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: confirming appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Confirm")
	if err != nil {
		return nil, err
	}

	if !appt.CanTransitionTo(domain.StatusConfirmed) {
		s.logger.Warn("Confirm: appointment id=%d in status %s cannot be confirmed", id, appt.Status)
		return nil, fmt.Errorf("%w: cannot confirm appointment in status %q", ErrInvalidInput, appt.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusConfirmed
	return models.FromDomainAppointment(appt), nil
}

func (s *Service) getAppointment(ctx context.Context, id int64, method string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", method, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return appt, nil
}

// busyExcludingOwn собирает занятость дня из бэкенда и локального журнала,
// отбрасывая интервалы, принадлежащие самой переносимой записи
func (s *Service) busyExcludingOwn(ctx context.Context, day time.Time, id int64, own domain.Interval) (domain.BusySet, error) {
	backendBusy, err := s.backend.FetchBusyIntervals(ctx, day)
	if err != nil {
		s.logger.Error("Reschedule: failed to fetch busy intervals: %v", err)
		return domain.BusySet{}, fmt.Errorf("%w: failed to fetch busy intervals: %v", ErrBackendUnavailable, err)
	}

	busy := domain.BusySet{}
	for _, iv := range backendBusy.Intervals() {
		if iv.Start.Equal(own.Start) && iv.End.Equal(own.End) {
			continue
		}
		busy.Add(iv)
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	local, err := s.appointmentRepo.GetActiveBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("Reschedule: failed to load local appointments: %v", err)
		return domain.BusySet{}, fmt.Errorf("%w: failed to load local appointments: %v", ErrInternal, err)
	}

	for _, a := range local {
		if a.ID == id {
			continue
		}
		busy.Add(a.Interval())
	}

	return busy, nil
}

func (s *Service) notify(ctx context.Context, eventType string, appt *domain.Appointment, now time.Time, reason *string) {
	event := automation.Event{
		Type:          eventType,
		AppointmentID: appt.ID,
		ServiceType:   appt.ServiceType,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
		OccurredAt:    now,
	}
	if reason != nil {
		event.Reason = *reason
	}

	if customer, err := s.customerRepo.GetByID(ctx, appt.CustomerID); err == nil {
		event.CustomerName = customer.FullName()
		event.CustomerPhone = customer.Phone
	}

	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("Appointment event %s delivery failed: %v", eventType, err)
	}
}

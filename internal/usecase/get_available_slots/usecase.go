package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/availability"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/pkg/types"
)

// UseCase use case получения доступных слотов на день
type UseCase struct {
	backend         SchedulingBackend
	appointmentRepo AppointmentRepository
	window          availability.Window
	defaultDuration int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	backend SchedulingBackend,
	appointmentRepo AppointmentRepository,
	window availability.Window,
	defaultDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		backend:         backend,
		appointmentRepo: appointmentRepo,
		window:          window,
		defaultDuration: defaultDurationMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает полный список слотов на день с флагом доступности.
// Занятость берется из внешнего бэкенда и дополняется активными записями
// из локального журнала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.DurationMinutes)

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.defaultDuration
	}

	// 2. Получаем занятость из внешнего бэкенда
	busy, err := uc.backend.FetchBusyIntervals(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch busy intervals: %v", ErrBackendUnavailable, err)
	}

	// 3. Дополняем занятость активными записями из локального журнала
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	local, err := uc.appointmentRepo.GetActiveBetween(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load local appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load local appointments: %v", ErrInternal, err)
	}

	for _, appt := range local {
		busy.Add(appt.Interval())
	}

	// 4. Прогоняем кандидатов через занятость
	slots, err := availability.AvailableSlots(req.Date, duration, busy, uc.window)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: slot generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           make([]SlotInfo, 0, len(slots)),
	}

	available := 0
	for _, slot := range slots {
		if slot.Available {
			available++
		}
		resp.Slots = append(resp.Slots, SlotInfo{
			StartTime: types.NewTimeString(slot.Start),
			EndTime:   types.NewTimeString(slot.End),
			Available: slot.Available,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d/%d slots available on %s",
		available, len(slots), req.Date.Format(domain.DateFormat))

	return resp, nil
}

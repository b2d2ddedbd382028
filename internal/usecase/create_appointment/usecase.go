package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/availability"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/scheduling"
	customerRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/customer"
	"github.com/callassist/CallAssist-BookingService/pkg/ptr"
)

// UseCase use case создания записи на прием
type UseCase struct {
	backend         SchedulingBackend
	backendName     string
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	notifier        Notifier
	txManager       TransactionManager
	defaultDuration int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	backend SchedulingBackend,
	backendName string,
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	notifier Notifier,
	txManager TransactionManager,
	defaultDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		backend:         backend,
		backendName:     backendName,
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		notifier:        notifier,
		txManager:       txManager,
		defaultDuration: defaultDurationMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает запись: проверяет доступность слота по свежей занятости,
// бронирует слот во внешнем бэкенде и сохраняет запись в локальном журнале.
// Событие автоматизации отправляется best-effort и не влияет на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: phone=%s, service=%s, start=%s",
		domain.CleanPhone(req.Phone), req.ServiceType, req.StartTime.Format(time.RFC3339))

	now := uc.timeProvider.Now()

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.defaultDuration
	}
	endTime := req.StartTime.Add(time.Duration(duration) * time.Minute)

	// 2. Конструируем доменные объекты, валидация fail-fast
	customer, err := domain.NewCustomer(req.FirstName, req.LastName, req.Phone, req.Email)
	if err != nil {
		uc.logger.Warn("CreateAppointment: customer validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Находим или создаем клиента в локальном журнале
	existing, err := uc.customerRepo.GetByPhone(ctx, customer.Phone)
	switch {
	case err == nil:
		customer = existing
	case errors.Is(err, customerRepo.ErrCustomerNotFound):
		customer, err = uc.customerRepo.Create(ctx, customer)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create customer: %v", err)
			return nil, fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
		}
		uc.logger.Info("CreateAppointment: created customer id=%d", customer.ID)
	default:
		uc.logger.Error("CreateAppointment: failed to look up customer: %v", err)
		return nil, fmt.Errorf("%w: failed to look up customer: %v", ErrInternal, err)
	}

	// 4. Регистрируем клиента во внешнем бэкенде (best-effort)
	if customer.ExternalID == nil {
		externalCustomerID, err := uc.backend.FindOrCreateCustomer(ctx, customer)
		if err != nil {
			uc.logger.Warn("CreateAppointment: failed to register customer in backend: %v", err)
		} else if externalCustomerID != "" {
			if err := uc.customerRepo.SetExternalID(ctx, customer.ID, externalCustomerID); err != nil {
				uc.logger.Warn("CreateAppointment: failed to store customer external id: %v", err)
			} else {
				customer.ExternalID = ptr.Ptr(externalCustomerID)
			}
		}
	}

	appt, err := domain.NewAppointment(customer.ID, req.ServiceType, req.StartTime, endTime, req.Notes, now)
	if err != nil {
		uc.logger.Warn("CreateAppointment: appointment validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Проверяем слот по свежей занятости: внешний бэкенд + локальный журнал
	busy, err := uc.backend.FetchBusyIntervals(ctx, req.StartTime)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to fetch busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch busy intervals: %v", ErrBackendUnavailable, err)
	}

	dayStart := time.Date(req.StartTime.Year(), req.StartTime.Month(), req.StartTime.Day(), 0, 0, 0, 0, req.StartTime.Location())
	local, err := uc.appointmentRepo.GetActiveBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load local appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load local appointments: %v", ErrInternal, err)
	}
	for _, a := range local {
		busy.Add(a.Interval())
	}

	if !availability.IsFree(appt.Interval(), busy) {
		uc.logger.Warn("CreateAppointment: slot %s is not available", appt.Interval())
		return nil, ErrSlotNotAvailable
	}

	// 6. Бронируем слот во внешнем бэкенде.
	// Ключ идемпотентности защищает от дублей при сетевых ретраях.
	idempotencyKey := uuid.NewString()

	externalID, err := uc.backend.CreateBooking(ctx, appt, customer, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrSlotTaken):
			uc.logger.Warn("CreateAppointment: backend reports slot taken: %v", err)
			return nil, ErrSlotNotAvailable
		default:
			uc.logger.Error("CreateAppointment: backend booking failed: %v", err)
			return nil, fmt.Errorf("%w: backend booking failed: %v", ErrBackendUnavailable, err)
		}
	}

	appt.ExternalID = ptr.Ptr(externalID)
	appt.Backend = ptr.Ptr(uc.backendName)

	// 7. Сохраняем запись в локальном журнале в сериализуемой транзакции
	var result *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			return fmt.Errorf("%w: failed to persist appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to persist appointment: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d external_id=%s", result.ID, externalID)

	// 8. Отправляем событие автоматизации (best-effort)
	uc.notifyBooked(ctx, result, customer, now)

	return &Response{
		ID:          result.ID,
		CustomerID:  result.CustomerID,
		ServiceType: result.ServiceType,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		Notes:       result.Notes,
		ExternalID:  result.ExternalID,
		Backend:     result.Backend,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func (uc *UseCase) notifyBooked(ctx context.Context, appt *domain.Appointment, customer *domain.Customer, now time.Time) {
	event := automation.Event{
		Type:          automation.EventAppointmentBooked,
		AppointmentID: appt.ID,
		CustomerName:  customer.FullName(),
		CustomerPhone: customer.Phone,
		ServiceType:   appt.ServiceType,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
		OccurredAt:    now,
	}

	if err := uc.notifier.Notify(ctx, event); err != nil {
		uc.logger.Warn("CreateAppointment: automation delivery failed: %v", err)
	}
}

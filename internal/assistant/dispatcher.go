package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
	createUC "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
	slotsUC "github.com/callassist/CallAssist-BookingService/internal/usecase/get_available_slots"
)

// Dispatcher выполняет функции, которые голосовой ассистент вызывает
// во время разговора. Аргументы приходят как JSON от LLM, поэтому
// разбор намеренно снисходителен к форматам, а валидация остается
// за usecase-ами.
type Dispatcher struct {
	slotsUseCase  GetAvailableSlotsUseCase
	createUseCase CreateAppointmentUseCase
	catalog       []ServiceInfo
	logger        Logger
}

// NewDispatcher создает диспетчер функций ассистента
func NewDispatcher(
	slotsUseCase GetAvailableSlotsUseCase,
	createUseCase CreateAppointmentUseCase,
	catalog []ServiceInfo,
	logger Logger,
) *Dispatcher {
	return &Dispatcher{
		slotsUseCase:  slotsUseCase,
		createUseCase: createUseCase,
		catalog:       catalog,
		logger:        logger,
	}
}

// Dispatch выполняет функцию по имени и возвращает результат для ассистента
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	d.logger.Info("Dispatch: function=%s", name)

	switch name {
	case FunctionCheckAvailability:
		return d.checkAvailability(ctx, args)
	case FunctionBookAppointment:
		return d.bookAppointment(ctx, args)
	case FunctionGetServices:
		return d.getServices(), nil
	default:
		d.logger.Warn("Dispatch: unknown function %q", name)
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
}

type checkAvailabilityArgs struct {
	Date            string `json:"date"` // YYYY-MM-DD
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

type availabilityResult struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
}

func (d *Dispatcher) checkAvailability(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var args checkAvailabilityArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	date, err := time.Parse(domain.DateFormat, args.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidArguments)
	}

	resp, err := d.slotsUseCase.Execute(ctx, &slotsUC.Request{
		Date:            date,
		DurationMinutes: args.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, slotsUC.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		return nil, err
	}

	// Ассистенту озвучиваются только свободные времена
	result := availabilityResult{Date: args.Date, AvailableTimes: make([]string, 0)}
	for _, slot := range resp.Slots {
		if slot.Available {
			result.AvailableTimes = append(result.AvailableTimes, slot.StartTime.String())
		}
	}

	return result, nil
}

type bookAppointmentArgs struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	ServiceType     string  `json:"serviceType"`
	Date            string  `json:"date"` // YYYY-MM-DD
	Time            string  `json:"time"` // HH:MM
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type bookingResult struct {
	AppointmentID int64  `json:"appointmentId"`
	StartTime     string `json:"startTime"`
	Status        string `json:"status"`
}

func (d *Dispatcher) bookAppointment(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var args bookAppointmentArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		args.Date+" "+args.Time,
		time.Local,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD and time must be HH:MM", ErrInvalidArguments)
	}

	resp, err := d.createUseCase.Execute(ctx, &createUC.Request{
		FirstName:       args.FirstName,
		LastName:        args.LastName,
		Phone:           args.Phone,
		Email:           args.Email,
		ServiceType:     args.ServiceType,
		StartTime:       start,
		DurationMinutes: args.DurationMinutes,
		Notes:           args.Notes,
	})
	if err != nil {
		if errors.Is(err, createUC.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		return nil, err
	}

	return bookingResult{
		AppointmentID: resp.ID,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		Status:        resp.Status,
	}, nil
}

func (d *Dispatcher) getServices() interface{} {
	return d.catalog
}

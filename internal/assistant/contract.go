package assistant

import (
	"context"

	createUC "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
	slotsUC "github.com/callassist/CallAssist-BookingService/internal/usecase/get_available_slots"
)

// Имена функций, доступных голосовому ассистенту во время звонка
const (
	FunctionCheckAvailability = "check_availability"
	FunctionBookAppointment   = "book_appointment"
	FunctionGetServices       = "get_services"
)

// GetAvailableSlotsUseCase интерфейс usecase доступных слотов
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// CreateAppointmentUseCase интерфейс usecase создания записи
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createUC.Request) (*createUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ServiceInfo услуга в каталоге ассистента
type ServiceInfo struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category,omitempty"`
}

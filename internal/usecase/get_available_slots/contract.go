package get_available_slots

import (
	"context"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

// SchedulingBackend интерфейс бэкенда бронирования
type SchedulingBackend interface {
	FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetActiveBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

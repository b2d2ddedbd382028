package appointments

import (
	"context"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetActiveBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason *string, cancelledAt time.Time) error
	Reschedule(ctx context.Context, id int64, newStart, newEnd time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// SchedulingBackend интерфейс бэкенда бронирования
type SchedulingBackend interface {
	CancelBooking(ctx context.Context, externalID string, reason string) error
	RescheduleBooking(ctx context.Context, externalID string, newStart, newEnd time.Time) error
	FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error)
}

// Notifier интерфейс доставки событий автоматизации
type Notifier interface {
	Notify(ctx context.Context, event automation.Event) error
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

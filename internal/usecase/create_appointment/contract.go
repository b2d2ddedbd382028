package create_appointment

import (
	"context"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

// SchedulingBackend интерфейс бэкенда бронирования
type SchedulingBackend interface {
	CreateBooking(ctx context.Context, appt *domain.Appointment, customer *domain.Customer, idempotencyKey string) (string, error)
	FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error)
	FindOrCreateCustomer(ctx context.Context, customer *domain.Customer) (string, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetActiveBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	SetExternalID(ctx context.Context, id int64, externalID string) error
}

// Notifier интерфейс доставки событий автоматизации
type Notifier interface {
	Notify(ctx context.Context, event automation.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package calls

import (
	"context"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/voiceai"
)

// CallRepository интерфейс репозитория журнала звонков
type CallRepository interface {
	Create(ctx context.Context, c *domain.Call) (*domain.Call, error)
	GetByID(ctx context.Context, id int64) (*domain.Call, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Call, error)
	Finish(ctx context.Context, id int64, status domain.CallStatus, transcript *string, startedAt, endedAt *time.Time) error
	LinkAppointment(ctx context.Context, id, appointmentID int64) error
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Call, error)
	CountByStatusBetween(ctx context.Context, from, to time.Time) (map[domain.CallStatus]int64, error)
}

// AppointmentRepository интерфейс репозитория записей (для аналитики)
type AppointmentRepository interface {
	CountByStatusBetween(ctx context.Context, from, to time.Time) (map[domain.AppointmentStatus]int64, error)
}

// Dialer интерфейс исходящих звонков через голосового провайдера
type Dialer interface {
	InitiateCall(ctx context.Context, toNumber string) (string, error)
	GetCallInfo(ctx context.Context, externalID string) (voiceai.CallInfo, error)
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

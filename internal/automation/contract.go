package automation

import (
	"context"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MakecomAPI интерфейс клиента Make.com
type MakecomAPI interface {
	TriggerScenario(ctx context.Context, payload interface{}) error
}

// ZapierAPI интерфейс клиента Zapier
type ZapierAPI interface {
	TriggerZap(ctx context.Context, payload interface{}) error
}

// Event событие автоматизации. Отправляется во внешнюю платформу после
// изменения состояния записи, доставка выполняется по принципу best-effort.
type Event struct {
	Type          string    `json:"event_type"`
	AppointmentID int64     `json:"appointment_id,omitempty"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	ServiceType   string    `json:"service_type,omitempty"`
	StartTime     time.Time `json:"start_time,omitempty"`
	EndTime       time.Time `json:"end_time,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Типы событий автоматизации
const (
	EventAppointmentBooked      = "appointment_booked"
	EventAppointmentCancelled   = "appointment_cancelled"
	EventAppointmentRescheduled = "appointment_rescheduled"
	EventCallCompleted          = "call_completed"
)

// Notifier доставляет события автоматизации во внешнюю платформу
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

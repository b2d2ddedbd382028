package scheduling

import (
	"context"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/calcom"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/crm"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/googlecalendar"
)

// Backend полиморфный контракт провайдера планирования.
// Каждый вариант (календарь, инструмент бронирования, CRM) обязан вести себя
// одинаково с точки зрения вызывающего:
//   - CreateBooking логически идемпотентен для повторов с тем же ключом;
//     возвращает ErrSlotTaken при занятом слоте, ErrProvider при прочих сбоях
//   - CancelBooking идемпотентен: отмена уже отмененного или неизвестного
//     бронирования — успех, а не ошибка
//   - RescheduleBooking гарантирует только итоговый эффект (старый интервал
//     освобожден, новый занят); механизм — обновление на месте или
//     отмена+пересоздание — остается за провайдером
//   - FetchBusyIntervals питает резолвер доступности; вызывающий обязан
//     запрашивать занятость непосредственно перед проверкой и бронировать
//     сразу после, иначе возможна гонка двойного бронирования
type Backend interface {
	CreateBooking(ctx context.Context, appointment *domain.Appointment, customer *domain.Customer, idempotencyKey string) (string, error)
	CancelBooking(ctx context.Context, externalID, reason string) error
	RescheduleBooking(ctx context.Context, externalID string, newStart, newEnd time.Time) error
	FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error)
	FindOrCreateCustomer(ctx context.Context, customer *domain.Customer) (string, error)
}

// GoogleCalendarAPI интерфейс клиента Google Calendar, используемый адаптером
type GoogleCalendarAPI interface {
	CreateEvent(ctx context.Context, event *googlecalendar.Event) (*googlecalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, event *googlecalendar.Event) (*googlecalendar.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	GetBusyTimes(ctx context.Context, start, end time.Time) ([]googlecalendar.TimePeriod, error)
}

// CalcomAPI интерфейс клиента Cal.com, используемый адаптером
type CalcomAPI interface {
	CreateBooking(ctx context.Context, booking *calcom.BookingRequest) (*calcom.Booking, error)
	GetBookingsBetween(ctx context.Context, from, to time.Time) ([]calcom.Booking, error)
	CancelBooking(ctx context.Context, bookingID, reason string) error
	RescheduleBooking(ctx context.Context, bookingID string, newStart, newEnd time.Time) error
}

// CRMAPI интерфейс клиента CRM, используемый адаптером
type CRMAPI interface {
	CreateCustomer(ctx context.Context, customer *crm.Customer) (*crm.Customer, error)
	FindCustomerByPhone(ctx context.Context, phone string) (*crm.Customer, error)
	CreateAppointment(ctx context.Context, appointment *crm.Appointment) (*crm.Appointment, error)
	GetAppointmentsBetween(ctx context.Context, from, to time.Time) ([]crm.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID, reason string) error
	RescheduleAppointment(ctx context.Context, appointmentID string, newStart, newEnd time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

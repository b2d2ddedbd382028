package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/googlecalendar"
)

// GoogleCalendarBackend адаптер Backend поверх Google Calendar.
// У календаря нет собственного справочника клиентов, поэтому
// FindOrCreateCustomer возвращает синтетический идентификатор по телефону,
// а данные клиента попадают в описание события.
type GoogleCalendarBackend struct {
	client GoogleCalendarAPI
	log    Logger
}

// NewGoogleCalendarBackend создает адаптер Google Calendar
func NewGoogleCalendarBackend(client GoogleCalendarAPI, log Logger) *GoogleCalendarBackend {
	return &GoogleCalendarBackend{client: client, log: log}
}

// CreateBooking создает событие в календаре и возвращает его ID
func (b *GoogleCalendarBackend) CreateBooking(ctx context.Context, appointment *domain.Appointment, customer *domain.Customer, idempotencyKey string) (string, error) {
	event := &googlecalendar.Event{
		Summary: fmt.Sprintf("%s - %s", appointment.ServiceType, customer.FullName()),
		Description: fmt.Sprintf("Service: %s\nCustomer: %s\nPhone: %s",
			appointment.ServiceType, customer.FullName(), customer.Phone),
		Start: googlecalendar.EventDateTime{DateTime: appointment.StartTime},
		End:   googlecalendar.EventDateTime{DateTime: appointment.EndTime},
	}

	if customer.Email != nil {
		event.Attendees = []googlecalendar.Attendee{{
			Email:       *customer.Email,
			DisplayName: customer.FullName(),
		}}
	}

	if idempotencyKey != "" {
		event.Extended = &googlecalendar.ExtendedProps{
			Private: map[string]string{"idempotencyKey": idempotencyKey},
		}
	}

	created, err := b.client.CreateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, googlecalendar.ErrConflict) {
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("%w: CreateBooking - create event: %v", ErrProvider, err)
	}

	return created.ID, nil
}

// CancelBooking удаляет событие. Уже удаленное или неизвестное событие — успех
func (b *GoogleCalendarBackend) CancelBooking(ctx context.Context, externalID, reason string) error {
	err := b.client.DeleteEvent(ctx, externalID)
	if err != nil {
		if errors.Is(err, googlecalendar.ErrEventNotFound) {
			b.log.Info("CancelBooking: event id=%s already gone, treating as cancelled", externalID)
			return nil
		}
		return fmt.Errorf("%w: CancelBooking - delete event: %v", ErrProvider, err)
	}
	return nil
}

// RescheduleBooking обновляет время события на месте
func (b *GoogleCalendarBackend) RescheduleBooking(ctx context.Context, externalID string, newStart, newEnd time.Time) error {
	patch := &googlecalendar.Event{
		Start: googlecalendar.EventDateTime{DateTime: newStart},
		End:   googlecalendar.EventDateTime{DateTime: newEnd},
	}

	if _, err := b.client.UpdateEvent(ctx, externalID, patch); err != nil {
		if errors.Is(err, googlecalendar.ErrEventNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: RescheduleBooking - update event: %v", ErrProvider, err)
	}
	return nil
}

// FetchBusyIntervals запрашивает занятые интервалы календаря на указанный день
func (b *GoogleCalendarBackend) FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	periods, err := b.client.GetBusyTimes(ctx, dayStart, dayEnd)
	if err != nil {
		return domain.BusySet{}, fmt.Errorf("%w: FetchBusyIntervals - freebusy query: %v", ErrProvider, err)
	}

	busy := domain.NewBusySet()
	for _, p := range periods {
		iv, err := domain.NewInterval(p.Start, p.End)
		if err != nil {
			// Календарь иногда отдает вырожденные интервалы, на занятость они не влияют
			b.log.Warn("FetchBusyIntervals: skipping degenerate busy period [%s, %s]", p.Start, p.End)
			continue
		}
		busy.Add(iv)
	}

	return busy, nil
}

// FindOrCreateCustomer возвращает синтетический идентификатор клиента по телефону
func (b *GoogleCalendarBackend) FindOrCreateCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	return "phone:" + domain.CleanPhone(customer.Phone), nil
}

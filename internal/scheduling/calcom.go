package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/calcom"
)

// CalcomBackend адаптер Backend поверх Cal.com.
// Все бронирования идут через один сконфигурированный event type;
// данные клиента встроены в бронирование, отдельного справочника нет.
type CalcomBackend struct {
	client      CalcomAPI
	eventTypeID int64
	log         Logger
}

// NewCalcomBackend создает адаптер Cal.com
func NewCalcomBackend(client CalcomAPI, eventTypeID int64, log Logger) *CalcomBackend {
	return &CalcomBackend{
		client:      client,
		eventTypeID: eventTypeID,
		log:         log,
	}
}

// CreateBooking создает бронирование и возвращает его ID
func (b *CalcomBackend) CreateBooking(ctx context.Context, appointment *domain.Appointment, customer *domain.Customer, idempotencyKey string) (string, error) {
	email := ""
	if customer.Email != nil {
		email = *customer.Email
	}

	notes := ""
	if appointment.Notes != nil {
		notes = *appointment.Notes
	}

	req := &calcom.BookingRequest{
		EventTypeID: b.eventTypeID,
		Start:       appointment.StartTime,
		End:         appointment.EndTime,
		TimeZone:    appointment.StartTime.Location().String(),
		Language:    "en",
		Title:       fmt.Sprintf("%s - %s", appointment.ServiceType, customer.FullName()),
		Responses: calcom.AttendeeFields{
			Name:  customer.FullName(),
			Email: email,
			Phone: customer.Phone,
			Notes: notes,
		},
	}

	if idempotencyKey != "" {
		req.Metadata = map[string]string{"idempotencyKey": idempotencyKey}
	}

	created, err := b.client.CreateBooking(ctx, req)
	if err != nil {
		if errors.Is(err, calcom.ErrSlotTaken) {
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("%w: CreateBooking - create booking: %v", ErrProvider, err)
	}

	return strconv.FormatInt(created.ID, 10), nil
}

// CancelBooking отменяет бронирование. Неизвестный ID — успех
func (b *CalcomBackend) CancelBooking(ctx context.Context, externalID, reason string) error {
	err := b.client.CancelBooking(ctx, externalID, reason)
	if err != nil {
		if errors.Is(err, calcom.ErrBookingNotFound) {
			b.log.Info("CancelBooking: booking id=%s not found, treating as cancelled", externalID)
			return nil
		}
		return fmt.Errorf("%w: CancelBooking - cancel booking: %v", ErrProvider, err)
	}
	return nil
}

// RescheduleBooking переносит бронирование на новое время
func (b *CalcomBackend) RescheduleBooking(ctx context.Context, externalID string, newStart, newEnd time.Time) error {
	err := b.client.RescheduleBooking(ctx, externalID, newStart, newEnd)
	if err != nil {
		if errors.Is(err, calcom.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: RescheduleBooking - reschedule booking: %v", ErrProvider, err)
	}
	return nil
}

// FetchBusyIntervals собирает занятость из активных бронирований за день
func (b *CalcomBackend) FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := b.client.GetBookingsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return domain.BusySet{}, fmt.Errorf("%w: FetchBusyIntervals - list bookings: %v", ErrProvider, err)
	}

	busy := domain.NewBusySet()
	for _, booking := range bookings {
		if booking.Status == "CANCELLED" || booking.Status == "cancelled" {
			continue
		}
		iv, err := domain.NewInterval(booking.StartTime, booking.EndTime)
		if err != nil {
			b.log.Warn("FetchBusyIntervals: skipping degenerate booking id=%d", booking.ID)
			continue
		}
		busy.Add(iv)
	}

	return busy, nil
}

// FindOrCreateCustomer возвращает синтетический идентификатор клиента по телефону
func (b *CalcomBackend) FindOrCreateCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	return "phone:" + domain.CleanPhone(customer.Phone), nil
}

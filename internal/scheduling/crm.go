package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/crm"
)

// CRMBackend адаптер Backend поверх generic CRM.
// Единственный вариант с настоящим справочником клиентов: запись в CRM
// всегда привязывается к найденному или созданному клиенту.
type CRMBackend struct {
	client CRMAPI
	log    Logger
}

// NewCRMBackend создает адаптер CRM
func NewCRMBackend(client CRMAPI, log Logger) *CRMBackend {
	return &CRMBackend{client: client, log: log}
}

// CreateBooking создает запись в CRM, предварительно разрешив клиента
func (b *CRMBackend) CreateBooking(ctx context.Context, appointment *domain.Appointment, customer *domain.Customer, idempotencyKey string) (string, error) {
	crmCustomerID, err := b.FindOrCreateCustomer(ctx, customer)
	if err != nil {
		return "", err
	}

	notes := ""
	if appointment.Notes != nil {
		notes = *appointment.Notes
	}

	req := &crm.Appointment{
		CustomerID:     crmCustomerID,
		Title:          fmt.Sprintf("%s - %s", appointment.ServiceType, customer.FullName()),
		StartTime:      appointment.StartTime,
		EndTime:        appointment.EndTime,
		ServiceType:    appointment.ServiceType,
		Notes:          notes,
		IdempotencyKey: idempotencyKey,
	}

	created, err := b.client.CreateAppointment(ctx, req)
	if err != nil {
		if errors.Is(err, crm.ErrSlotTaken) {
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("%w: CreateBooking - create appointment: %v", ErrProvider, err)
	}

	return created.ID, nil
}

// CancelBooking отменяет запись. Неизвестный ID — успех
func (b *CRMBackend) CancelBooking(ctx context.Context, externalID, reason string) error {
	err := b.client.CancelAppointment(ctx, externalID, reason)
	if err != nil {
		if errors.Is(err, crm.ErrAppointmentNotFound) {
			b.log.Info("CancelBooking: appointment id=%s not found, treating as cancelled", externalID)
			return nil
		}
		return fmt.Errorf("%w: CancelBooking - cancel appointment: %v", ErrProvider, err)
	}
	return nil
}

// RescheduleBooking переносит запись на новое время (обновление на месте)
func (b *CRMBackend) RescheduleBooking(ctx context.Context, externalID string, newStart, newEnd time.Time) error {
	err := b.client.RescheduleAppointment(ctx, externalID, newStart, newEnd)
	if err != nil {
		if errors.Is(err, crm.ErrAppointmentNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: RescheduleBooking - reschedule appointment: %v", ErrProvider, err)
	}
	return nil
}

// FetchBusyIntervals собирает занятость из активных записей CRM за день
func (b *CRMBackend) FetchBusyIntervals(ctx context.Context, day time.Time) (domain.BusySet, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := b.client.GetAppointmentsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return domain.BusySet{}, fmt.Errorf("%w: FetchBusyIntervals - list appointments: %v", ErrProvider, err)
	}

	busy := domain.NewBusySet()
	for _, appointment := range appointments {
		if appointment.Status == "cancelled" || appointment.Status == "no_show" {
			continue
		}
		iv, err := domain.NewInterval(appointment.StartTime, appointment.EndTime)
		if err != nil {
			b.log.Warn("FetchBusyIntervals: skipping degenerate appointment id=%s", appointment.ID)
			continue
		}
		busy.Add(iv)
	}

	return busy, nil
}

// FindOrCreateCustomer ищет клиента по телефону, при отсутствии создает нового
func (b *CRMBackend) FindOrCreateCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	found, err := b.client.FindCustomerByPhone(ctx, customer.Phone)
	if err == nil {
		return found.ID, nil
	}
	if !errors.Is(err, crm.ErrCustomerNotFound) {
		return "", fmt.Errorf("%w: FindOrCreateCustomer - search by phone: %v", ErrProvider, err)
	}

	created, err := b.client.CreateCustomer(ctx, &crm.Customer{
		Name:  customer.FullName(),
		Email: customer.Email,
		Phone: customer.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("%w: FindOrCreateCustomer - create customer: %v", ErrProvider, err)
	}

	b.log.Info("FindOrCreateCustomer: created CRM customer id=%s", created.ID)
	return created.ID, nil
}

package models

import (
	"errors"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// RescheduleAppointmentRequest запрос на перенос записи
type RescheduleAppointmentRequest struct {
	NewStartTime    time.Time `json:"newStartTime"`
	DurationMinutes int       `json:"durationMinutes,omitempty"` // 0 сохраняет текущую длительность
}

// GetCustomerAppointmentsRequest запрос на получение записей клиента
type GetCustomerAppointmentsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// Response модели

// AppointmentResponse модель записи в ответах сервиса
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	ServiceType string    `json:"serviceType"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`

	ExternalID *string `json:"externalId,omitempty"`
	Backend    *string `json:"backend,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		CustomerID:         appt.CustomerID,
		ServiceType:        appt.ServiceType,
		StartTime:          appt.StartTime,
		EndTime:            appt.EndTime,
		Status:             string(appt.Status),
		Notes:              appt.Notes,
		ExternalID:         appt.ExternalID,
		Backend:            appt.Backend,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		out = append(out, FromDomainAppointment(appt))
	}

	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}

// ToDomainAppointmentStatus конвертирует строковый статус в доменный
func ToDomainAppointmentStatus(raw string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(raw) {
	case domain.StatusScheduled, domain.StatusConfirmed, domain.StatusCancelled,
		domain.StatusCompleted, domain.StatusNoShow:
		return domain.AppointmentStatus(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

package models

import (
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

// Request модели

// InitiateCallRequest запрос на исходящий звонок
type InitiateCallRequest struct {
	Phone string `json:"phone"`
}

// FinishCallRequest итоговые данные завершившегося звонка
type FinishCallRequest struct {
	ExternalID string
	Status     domain.CallStatus
	Transcript *string
	StartedAt  *time.Time
	EndedAt    *time.Time
}

// AnalyticsRequest запрос аналитики за период
type AnalyticsRequest struct {
	From time.Time
	To   time.Time
}

// Response модели

// CallResponse модель звонка в ответах сервиса
type CallResponse struct {
	ID         int64   `json:"id"`
	Phone      string  `json:"phone"`
	Direction  string  `json:"direction"`
	Provider   string  `json:"provider"`
	ExternalID *string `json:"externalId,omitempty"`
	Status     string  `json:"status"`
	Transcript *string `json:"transcript,omitempty"`

	CustomerID      *int64 `json:"customerId,omitempty"`
	AppointmentID   *int64 `json:"appointmentId,omitempty"`
	DurationSeconds int64  `json:"durationSeconds"`

	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnalyticsResponse сводка по звонкам и записям за период
type AnalyticsResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalCalls     int64            `json:"totalCalls"`
	CallsByStatus  map[string]int64 `json:"callsByStatus"`
	TotalBookings  int64            `json:"totalBookings"`
	ByBookingState map[string]int64 `json:"bookingsByStatus"`
	ConversionRate float64          `json:"conversionRate"` // записи на звонок, 0..1
}

// FromDomainCall конвертирует доменный звонок в response
func FromDomainCall(c *domain.Call) *CallResponse {
	return &CallResponse{
		ID:              c.ID,
		Phone:           c.Phone,
		Direction:       string(c.Direction),
		Provider:        c.Provider,
		ExternalID:      c.ExternalID,
		Status:          string(c.Status),
		Transcript:      c.Transcript,
		CustomerID:      c.CustomerID,
		AppointmentID:   c.AppointmentID,
		DurationSeconds: c.DurationSeconds(),
		StartedAt:       c.StartedAt,
		EndedAt:         c.EndedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

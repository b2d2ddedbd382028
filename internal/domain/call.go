package domain

import (
	"fmt"
	"time"
)

// CallDirection направление звонка
type CallDirection string

// Направления звонков
const (
	CallInbound  CallDirection = "inbound"
	CallOutbound CallDirection = "outbound"
)

// CallStatus статус звонка в локальном журнале
type CallStatus string

// Статусы звонков
const (
	CallStatusInitiated  CallStatus = "initiated"
	CallStatusInProgress CallStatus = "in_progress"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
)

// Call запись в журнале звонков. ExternalID идентифицирует звонок
// в системе голосового провайдера.
type Call struct {
	ID         int64
	Phone      string
	Direction  CallDirection
	Provider   string
	ExternalID *string
	Status     CallStatus
	Transcript *string

	CustomerID    *int64
	AppointmentID *int64

	StartedAt *time.Time
	EndedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCall валидирует и создает запись журнала звонков в статусе initiated
func NewCall(phone string, direction CallDirection, provider string) (*Call, error) {
	if len(CleanPhone(phone)) < MinPhoneDigits {
		return nil, fmt.Errorf("%w: phone must contain at least %d digits", ErrValidation, MinPhoneDigits)
	}
	if direction != CallInbound && direction != CallOutbound {
		return nil, fmt.Errorf("%w: unknown call direction %q", ErrValidation, direction)
	}
	if provider == "" {
		return nil, fmt.Errorf("%w: provider must not be empty", ErrValidation)
	}

	return &Call{
		Phone:     phone,
		Direction: direction,
		Provider:  provider,
		Status:    CallStatusInitiated,
	}, nil
}

// IsFinished возвращает true, если звонок завершился
func (c *Call) IsFinished() bool {
	return c.Status == CallStatusCompleted || c.Status == CallStatusFailed
}

// DurationSeconds возвращает длительность звонка в секундах,
// или 0, если звонок не завершился
func (c *Call) DurationSeconds() int64 {
	if c.StartedAt == nil || c.EndedAt == nil {
		return 0
	}

	return int64(c.EndedAt.Sub(*c.StartedAt).Seconds())
}

package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked appointment flowing through the system.
// ID is assigned by the local store on creation; ExternalID is assigned by
// whichever scheduling backend persists the booking.
type Appointment struct {
	ID          int64
	CustomerID  int64
	ServiceType string
	StartTime   time.Time
	EndTime     time.Time
	Status      AppointmentStatus
	Notes       *string

	ExternalID *string // vendor-assigned booking id
	Backend    *string // scheduling backend that owns the booking

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAppointment validates and constructs an appointment in the scheduled state.
// Validation is fail-fast: the value is never partially constructed.
func NewAppointment(customerID int64, serviceType string, start, end time.Time, notes *string, now time.Time) (*Appointment, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrValidation)
	}
	if serviceType == "" {
		return nil, fmt.Errorf("%w: serviceType must not be empty", ErrValidation)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrValidation)
	}
	if start.Before(now) {
		return nil, fmt.Errorf("%w: startTime must not be in the past", ErrValidation)
	}
	if notes != nil && len(*notes) > MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrValidation, MaxNotesLength)
	}

	return &Appointment{
		CustomerID:  customerID,
		ServiceType: serviceType,
		StartTime:   start,
		EndTime:     end,
		Status:      StatusScheduled,
		Notes:       notes,
	}, nil
}

// Interval returns the appointment's occupied time range
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted || a.Status == StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment times may still change
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled
}

// CanTransitionTo reports whether the status change is permitted.
// Transitions move forward only; cancellation is reachable while the
// appointment is still active, and rescheduling re-enters scheduled
// with updated times rather than introducing a new terminal state.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCancelled ||
			next == StatusCompleted || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted || next == StatusNoShow
	default:
		return false
	}
}

// Reschedule updates the appointment times in place. Only a scheduled
// appointment may be rescheduled; the status does not change.
func (a *Appointment) Reschedule(newStart, newEnd time.Time, now time.Time) error {
	if !a.CanBeRescheduled() {
		return fmt.Errorf("%w: cannot reschedule appointment in status %q", ErrInvalidTransition, a.Status)
	}
	if !newEnd.After(newStart) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrValidation)
	}
	if newStart.Before(now) {
		return fmt.Errorf("%w: startTime must not be in the past", ErrValidation)
	}

	a.StartTime = newStart
	a.EndTime = newEnd
	return nil
}

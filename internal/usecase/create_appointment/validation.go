package create_appointment

import (
	"fmt"
	"strings"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if len(domain.CleanPhone(req.Phone)) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: phone must contain at least %d digits", ErrInvalidInput, domain.MinPhoneDigits)
	}
	if strings.TrimSpace(req.ServiceType) == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

package reschedule_appointment

import (
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/service/appointments/models"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewStartTime    time.Time `json:"newStartTime"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RescheduleAppointmentRequest) ToServiceRequest() *models.RescheduleAppointmentRequest {
	return &models.RescheduleAppointmentRequest{
		NewStartTime:    r.NewStartTime,
		DurationMinutes: r.DurationMinutes,
	}
}

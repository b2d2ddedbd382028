package cancel_appointment

import (
	"github.com/callassist/CallAssist-BookingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		Reason: r.Reason,
	}
}

package create_appointment

import (
	"time"

	uc "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email,omitempty"`
	ServiceType     string    `json:"serviceType"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CallID          *int64    `json:"callId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateAppointmentRequest) ToUseCaseRequest() *uc.Request {
	return &uc.Request{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Email:           r.Email,
		ServiceType:     r.ServiceType,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		CallID:          r.CallID,
	}
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	ServiceType string    `json:"serviceType"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	ExternalID  *string   `json:"externalId,omitempty"`
	Backend     *string   `json:"backend,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *uc.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:          resp.ID,
		CustomerID:  resp.CustomerID,
		ServiceType: resp.ServiceType,
		StartTime:   resp.StartTime,
		EndTime:     resp.EndTime,
		Status:      resp.Status,
		Notes:       resp.Notes,
		ExternalID:  resp.ExternalID,
		Backend:     resp.Backend,
		CreatedAt:   resp.CreatedAt,
	}
}

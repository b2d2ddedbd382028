package create_appointment

import (
	"context"

	uc "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type CallService interface {
	LinkAppointment(ctx context.Context, callID, appointmentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package initiate_call

import (
	"context"

	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

type CallService interface {
	InitiateCall(ctx context.Context, req *models.InitiateCallRequest) (*models.CallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_call

import (
	"context"

	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

type CallService interface {
	GetByID(ctx context.Context, id int64) (*models.CallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

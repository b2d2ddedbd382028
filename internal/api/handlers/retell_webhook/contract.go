package retell_webhook

import (
	"context"

	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

type CallService interface {
	RecordInbound(ctx context.Context, phone, provider, externalID string) (*models.CallResponse, error)
	FinishByExternalID(ctx context.Context, req *models.FinishCallRequest) (*models.CallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

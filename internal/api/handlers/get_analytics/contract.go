package get_analytics

import (
	"context"

	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

type CallService interface {
	GetAnalytics(ctx context.Context, req *models.AnalyticsRequest) (*models.AnalyticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

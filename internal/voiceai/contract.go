package voiceai

import (
	"context"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/retell"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/twilio"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/vapi"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// VapiAPI интерфейс клиента Vapi
type VapiAPI interface {
	MakeCall(ctx context.Context, call *vapi.CallRequest) (*vapi.Call, error)
	GetCall(ctx context.Context, callID string) (*vapi.Call, error)
}

// RetellAPI интерфейс клиента Retell
type RetellAPI interface {
	MakeCall(ctx context.Context, call *retell.CallRequest) (*retell.Call, error)
	GetCall(ctx context.Context, callID string) (*retell.Call, error)
}

// TwilioAPI интерфейс клиента Twilio
type TwilioAPI interface {
	MakeCall(ctx context.Context, toNumber, twimlURL string) (*twilio.Call, error)
	GetCall(ctx context.Context, callSID string) (*twilio.Call, error)
}

// CallStatus статус звонка, приведенный к общему виду
type CallStatus string

// Статусы звонков
const (
	StatusQueued     CallStatus = "queued"
	StatusInProgress CallStatus = "in_progress"
	StatusCompleted  CallStatus = "completed"
	StatusFailed     CallStatus = "failed"
)

// CallInfo сведения о звонке у голосового провайдера
type CallInfo struct {
	ExternalID string
	Status     CallStatus
	Transcript string
	StartedAt  *time.Time
	EndedAt    *time.Time
}

// Dialer единый контракт исходящих звонков поверх голосовых провайдеров.
// ExternalID идентифицирует звонок в системе провайдера.
type Dialer interface {
	// InitiateCall начинает исходящий звонок на номер и возвращает
	// внешний идентификатор звонка.
	InitiateCall(ctx context.Context, toNumber string) (string, error)

	// GetCallInfo возвращает текущее состояние звонка.
	// Неизвестный идентификатор дает ErrCallNotFound.
	GetCallInfo(ctx context.Context, externalID string) (CallInfo, error)
}

package voiceai

import (
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/retell"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/twilio"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/vapi"
)

// Имена голосовых провайдеров
const (
	ProviderVapi   = "vapi"
	ProviderRetell = "retell"
	ProviderTwilio = "twilio"
)

// Config конфигурация голосового провайдера
type Config struct {
	Provider string
	Vapi     VapiConfig
	Retell   RetellConfig
	Twilio   TwilioConfig
}

// VapiConfig настройки Vapi
type VapiConfig struct {
	APIKey        string
	AssistantID   string
	PhoneNumberID string
	Timeout       time.Duration
}

// RetellConfig настройки Retell
type RetellConfig struct {
	APIKey     string
	AgentID    string
	FromNumber string
	Timeout    time.Duration
}

// TwilioConfig настройки Twilio
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	TwimlURL   string
	Timeout    time.Duration
}

// New создает дайлер для сконфигурированного голосового провайдера.
// Неизвестный провайдер дает ошибку сразу, до первого сетевого вызова.
func New(cfg Config, log Logger) (Dialer, error) {
	switch cfg.Provider {
	case ProviderVapi:
		client := vapi.NewClient(cfg.Vapi.APIKey, cfg.Vapi.Timeout, log)
		return NewVapiDialer(client, cfg.Vapi.AssistantID, cfg.Vapi.PhoneNumberID, log), nil
	case ProviderRetell:
		client := retell.NewClient(cfg.Retell.APIKey, cfg.Retell.Timeout, log)
		return NewRetellDialer(client, cfg.Retell.AgentID, cfg.Retell.FromNumber, log), nil
	case ProviderTwilio:
		client := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, cfg.Twilio.Timeout, log)
		return NewTwilioDialer(client, cfg.Twilio.TwimlURL, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
}

package automation

import (
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/makecom"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/zapier"
)

// Имена провайдеров автоматизации
const (
	ProviderMakecom = "makecom"
	ProviderZapier  = "zapier"
	ProviderNone    = ""
)

// Config конфигурация автоматизации
type Config struct {
	Provider   string
	WebhookURL string
	Timeout    time.Duration
}

// New создает нотификатор для сконфигурированного провайдера.
// Пустой провайдер означает, что автоматизация выключена.
func New(cfg Config, log Logger) (Notifier, error) {
	switch cfg.Provider {
	case ProviderMakecom:
		client := makecom.NewClient(cfg.WebhookURL, cfg.Timeout, log)
		return NewMakecomNotifier(client, log), nil
	case ProviderZapier:
		client := zapier.NewClient(cfg.WebhookURL, cfg.Timeout, log)
		return NewZapierNotifier(client, log), nil
	case ProviderNone:
		return NoopNotifier{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
}

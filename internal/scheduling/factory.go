package scheduling

import (
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/calcom"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/crm"
	"github.com/callassist/CallAssist-BookingService/internal/integrations/googlecalendar"
)

// Имена поддерживаемых провайдеров
const (
	ProviderGoogleCalendar = "google_calendar"
	ProviderCalcom         = "calcom"
	ProviderCRM            = "crm"
)

// GoogleCalendarConfig конфигурация адаптера Google Calendar
type GoogleCalendarConfig struct {
	Token      string
	CalendarID string
	Timeout    time.Duration
}

// CalcomConfig конфигурация адаптера Cal.com
type CalcomConfig struct {
	APIKey      string
	BaseURL     string
	EventTypeID int64
	Timeout     time.Duration
}

// CRMConfig конфигурация адаптера CRM
type CRMConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Config конфигурация фабрики провайдеров
type Config struct {
	Provider       string
	GoogleCalendar GoogleCalendarConfig
	Calcom         CalcomConfig
	CRM            CRMConfig
}

// New выбирает и конструирует ровно один вариант Backend по имени провайдера.
// Адаптеры получают свою конфигурацию явно и передаются дальше через DI;
// никаких синглтонов уровня пакета. Неизвестное имя — фатальная ошибка
// конфигурации, до каких-либо сетевых вызовов.
func New(cfg Config, log Logger) (Backend, error) {
	switch cfg.Provider {
	case ProviderGoogleCalendar:
		client := googlecalendar.NewClient(
			cfg.GoogleCalendar.Token,
			cfg.GoogleCalendar.CalendarID,
			cfg.GoogleCalendar.Timeout,
			log,
		)
		return NewGoogleCalendarBackend(client, log), nil

	case ProviderCalcom:
		client := calcom.NewClient(
			cfg.Calcom.APIKey,
			cfg.Calcom.BaseURL,
			cfg.Calcom.Timeout,
			log,
		)
		return NewCalcomBackend(client, cfg.Calcom.EventTypeID, log), nil

	case ProviderCRM:
		client := crm.NewClient(
			cfg.CRM.APIKey,
			cfg.CRM.BaseURL,
			cfg.CRM.Timeout,
			log,
		)
		return NewCRMBackend(client, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
}

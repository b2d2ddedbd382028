package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Database   DatabaseConfig   `toml:"database"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	VoiceAI    VoiceAIConfig    `toml:"voiceai"`
	Automation AutomationConfig `toml:"automation"`
	Webhooks   WebhooksConfig   `toml:"webhooks"`
	Business   BusinessConfig   `toml:"business"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки аутентификации API
type AuthConfig struct {
	APIToken string `toml:"api_token"`
}

// SchedulingConfig настройки бэкенда бронирования
type SchedulingConfig struct {
	Provider       string               `toml:"provider"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	Calcom         CalcomConfig         `toml:"calcom"`
	CRM            CRMConfig            `toml:"crm"`
}

// GoogleCalendarConfig настройки Google Calendar
type GoogleCalendarConfig struct {
	Token      string `toml:"token"`
	CalendarID string `toml:"calendar_id"`
	Timeout    int    `toml:"timeout"`
}

// CalcomConfig настройки Cal.com
type CalcomConfig struct {
	APIKey      string `toml:"api_key"`
	BaseURL     string `toml:"base_url"`
	EventTypeID int64  `toml:"event_type_id"`
	Timeout     int    `toml:"timeout"`
}

// CRMConfig настройки CRM
type CRMConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"`
}

// VoiceAIConfig настройки голосового провайдера
type VoiceAIConfig struct {
	Provider string       `toml:"provider"`
	Vapi     VapiConfig   `toml:"vapi"`
	Retell   RetellConfig `toml:"retell"`
	Twilio   TwilioConfig `toml:"twilio"`
}

// VapiConfig настройки Vapi
type VapiConfig struct {
	APIKey        string `toml:"api_key"`
	AssistantID   string `toml:"assistant_id"`
	PhoneNumberID string `toml:"phone_number_id"`
	Timeout       int    `toml:"timeout"`
}

// RetellConfig настройки Retell AI
type RetellConfig struct {
	APIKey     string `toml:"api_key"`
	AgentID    string `toml:"agent_id"`
	FromNumber string `toml:"from_number"`
	Timeout    int    `toml:"timeout"`
}

// TwilioConfig настройки Twilio
type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	TwimlURL   string `toml:"twiml_url"`
	Timeout    int    `toml:"timeout"`
}

// AutomationConfig настройки платформы автоматизации
type AutomationConfig struct {
	Provider   string `toml:"provider"`
	WebhookURL string `toml:"webhook_url"`
	Timeout    int    `toml:"timeout"`
}

// WebhooksConfig секреты для проверки подписей входящих вебхуков.
// PublicURL это внешний адрес сервиса, участвует в подписи Twilio.
type WebhooksConfig struct {
	VapiSecret   string `toml:"vapi_secret"`
	RetellSecret string `toml:"retell_secret"`
	PublicURL    string `toml:"public_url"`
}

// BusinessConfig рабочее окно и параметры слотов по умолчанию
type BusinessConfig struct {
	WorkStartHour   int `toml:"work_start_hour"`
	WorkEndHour     int `toml:"work_end_hour"`
	StepMinutes     int `toml:"step_minutes"`
	DurationMinutes int `toml:"duration_minutes"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "callassist-booking"
	}
	if cfg.Business.WorkStartHour == 0 && cfg.Business.WorkEndHour == 0 {
		cfg.Business.WorkStartHour = 9
		cfg.Business.WorkEndHour = 17
	}
	if cfg.Business.StepMinutes == 0 {
		cfg.Business.StepMinutes = 30
	}
	if cfg.Business.DurationMinutes == 0 {
		cfg.Business.DurationMinutes = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Scheduling.Provider == "" {
		return fmt.Errorf("config: scheduling.provider is required")
	}
	if cfg.Business.WorkEndHour <= cfg.Business.WorkStartHour {
		return fmt.Errorf("config: business.work_end_hour must be after business.work_start_hour")
	}
	if cfg.Business.StepMinutes <= 0 {
		return fmt.Errorf("config: business.step_minutes must be positive")
	}

	return nil
}

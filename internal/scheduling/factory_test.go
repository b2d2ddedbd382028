package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestNew(t *testing.T) {
	t.Run("google calendar", func(t *testing.T) {
		backend, err := New(Config{
			Provider:       ProviderGoogleCalendar,
			GoogleCalendar: GoogleCalendarConfig{Token: "tok", CalendarID: "primary", Timeout: time.Second},
		}, nopLogger{})
		require.NoError(t, err)
		assert.IsType(t, &GoogleCalendarBackend{}, backend)
	})

	t.Run("calcom", func(t *testing.T) {
		backend, err := New(Config{
			Provider: ProviderCalcom,
			Calcom:   CalcomConfig{APIKey: "key", EventTypeID: 42, Timeout: time.Second},
		}, nopLogger{})
		require.NoError(t, err)
		assert.IsType(t, &CalcomBackend{}, backend)
	})

	t.Run("crm", func(t *testing.T) {
		backend, err := New(Config{
			Provider: ProviderCRM,
			CRM:      CRMConfig{APIKey: "key", BaseURL: "https://crm.example.com", Timeout: time.Second},
		}, nopLogger{})
		require.NoError(t, err)
		assert.IsType(t, &CRMBackend{}, backend)
	})

	t.Run("unknown provider fails before any network call", func(t *testing.T) {
		backend, err := New(Config{Provider: "unknown_provider"}, nopLogger{})
		assert.ErrorIs(t, err, ErrUnsupportedProvider)
		assert.Nil(t, backend)
	})

	t.Run("empty provider is rejected", func(t *testing.T) {
		_, err := New(Config{}, nopLogger{})
		assert.ErrorIs(t, err, ErrUnsupportedProvider)
	})
}

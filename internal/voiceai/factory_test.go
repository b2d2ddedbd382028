package voiceai

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
	t.Run("vapi", func(t *testing.T) {
		dialer, err := New(Config{
			Provider: ProviderVapi,
			Vapi:     VapiConfig{APIKey: "key", AssistantID: "asst", PhoneNumberID: "pn", Timeout: time.Second},
		}, nopLogger{})
		require.NoError(t, err)
		assert.IsType(t, &VapiDialer{}, dialer)
	})

	t.Run("retell", func(t *testing.T) {
		dialer, err := New(Config{
			Provider: ProviderRetell,
			Retell:   RetellConfig{APIKey: "key", AgentID: "agent", FromNumber: "+15551234567", Timeout: time.Second},
		}, nopLogger{})
		require.NoError(t, err)
		assert.IsType(t, &RetellDialer{}, dialer)
	})

	t.Run("twilio", func(t *testing.T) {
		dialer, err := New(Config{
			Provider: ProviderTwilio,
			Twilio:   TwilioConfig{AccountSID: "AC123", AuthToken: "tok", FromNumber: "+15551234567", Timeout: time.Second},
		}, nopLogger{})
		require.NoError(t, err)
		assert.IsType(t, &TwilioDialer{}, dialer)
	})

	t.Run("unknown provider", func(t *testing.T) {
		dialer, err := New(Config{Provider: "skype"}, nopLogger{})
		assert.ErrorIs(t, err, ErrUnsupportedProvider)
		assert.Nil(t, dialer)
	})
}

package voiceai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/twilio"
)

// TwilioDialer реализация Dialer поверх Twilio. Сценарий разговора задается
// через twimlURL, который Twilio запрашивает после установки соединения.
type TwilioDialer struct {
	client   TwilioAPI
	twimlURL string
	log      Logger
}

// NewTwilioDialer создает дайлер поверх клиента Twilio
func NewTwilioDialer(client TwilioAPI, twimlURL string, log Logger) *TwilioDialer {
	return &TwilioDialer{
		client:   client,
		twimlURL: twimlURL,
		log:      log,
	}
}

// InitiateCall начинает исходящий звонок через Twilio
func (d *TwilioDialer) InitiateCall(ctx context.Context, toNumber string) (string, error) {
	call, err := d.client.MakeCall(ctx, toNumber, d.twimlURL)
	if err != nil {
		return "", fmt.Errorf("%w: InitiateCall - twilio make call: %v", ErrProvider, err)
	}

	return call.SID, nil
}

// GetCallInfo возвращает состояние звонка Twilio
func (d *TwilioDialer) GetCallInfo(ctx context.Context, externalID string) (CallInfo, error) {
	call, err := d.client.GetCall(ctx, externalID)
	if err != nil {
		if errors.Is(err, twilio.ErrCallNotFound) {
			return CallInfo{}, ErrCallNotFound
		}
		return CallInfo{}, fmt.Errorf("%w: GetCallInfo - twilio get call: %v", ErrProvider, err)
	}

	return CallInfo{
		ExternalID: call.SID,
		Status:     mapTwilioStatus(call.Status),
		StartedAt:  parseTwilioTime(call.StartTime),
		EndedAt:    parseTwilioTime(call.EndTime),
	}, nil
}

func mapTwilioStatus(status string) CallStatus {
	switch status {
	case "queued", "ringing":
		return StatusQueued
	case "in-progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	default:
		return StatusFailed
	}
}

// parseTwilioTime разбирает временные метки в формате RFC 2822,
// который использует Twilio API 2010-04-01
func parseTwilioTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := time.Parse(time.RFC1123Z, value)
	if err != nil {
		return nil
	}

	t = t.UTC()
	return &t
}

package voiceai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/retell"
)

// RetellDialer реализация Dialer поверх Retell AI
type RetellDialer struct {
	client     RetellAPI
	agentID    string
	fromNumber string
	log        Logger
}

// NewRetellDialer создает дайлер поверх клиента Retell
func NewRetellDialer(client RetellAPI, agentID, fromNumber string, log Logger) *RetellDialer {
	return &RetellDialer{
		client:     client,
		agentID:    agentID,
		fromNumber: fromNumber,
		log:        log,
	}
}

// InitiateCall начинает исходящий звонок через Retell
func (d *RetellDialer) InitiateCall(ctx context.Context, toNumber string) (string, error) {
	call, err := d.client.MakeCall(ctx, &retell.CallRequest{
		FromNumber: d.fromNumber,
		ToNumber:   toNumber,
		AgentID:    d.agentID,
	})
	if err != nil {
		return "", fmt.Errorf("%w: InitiateCall - retell make call: %v", ErrProvider, err)
	}

	return call.CallID, nil
}

// GetCallInfo возвращает состояние звонка Retell
func (d *RetellDialer) GetCallInfo(ctx context.Context, externalID string) (CallInfo, error) {
	call, err := d.client.GetCall(ctx, externalID)
	if err != nil {
		if errors.Is(err, retell.ErrCallNotFound) {
			return CallInfo{}, ErrCallNotFound
		}
		return CallInfo{}, fmt.Errorf("%w: GetCallInfo - retell get call: %v", ErrProvider, err)
	}

	return CallInfo{
		ExternalID: call.CallID,
		Status:     mapRetellStatus(call.CallStatus),
		Transcript: call.Transcript,
		StartedAt:  millisToTime(call.StartTimestamp),
		EndedAt:    millisToTime(call.EndTimestamp),
	}, nil
}

func mapRetellStatus(status string) CallStatus {
	switch status {
	case "registered":
		return StatusQueued
	case "ongoing":
		return StatusInProgress
	case "ended":
		return StatusCompleted
	default:
		return StatusFailed
	}
}

func millisToTime(millis int64) *time.Time {
	if millis == 0 {
		return nil
	}

	t := time.UnixMilli(millis).UTC()
	return &t
}

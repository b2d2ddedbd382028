package voiceai

import (
	"context"
	"errors"
	"fmt"

	"github.com/callassist/CallAssist-BookingService/internal/integrations/vapi"
)

// VapiDialer реализация Dialer поверх Vapi
type VapiDialer struct {
	client        VapiAPI
	assistantID   string
	phoneNumberID string
	log           Logger
}

// NewVapiDialer создает дайлер поверх клиента Vapi
func NewVapiDialer(client VapiAPI, assistantID, phoneNumberID string, log Logger) *VapiDialer {
	return &VapiDialer{
		client:        client,
		assistantID:   assistantID,
		phoneNumberID: phoneNumberID,
		log:           log,
	}
}

// InitiateCall начинает исходящий звонок через Vapi
func (d *VapiDialer) InitiateCall(ctx context.Context, toNumber string) (string, error) {
	call, err := d.client.MakeCall(ctx, &vapi.CallRequest{
		AssistantID:   d.assistantID,
		PhoneNumberID: d.phoneNumberID,
		Customer: vapi.CallRecipient{
			Number: toNumber,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: InitiateCall - vapi make call: %v", ErrProvider, err)
	}

	return call.ID, nil
}

// GetCallInfo возвращает состояние звонка Vapi
func (d *VapiDialer) GetCallInfo(ctx context.Context, externalID string) (CallInfo, error) {
	call, err := d.client.GetCall(ctx, externalID)
	if err != nil {
		if errors.Is(err, vapi.ErrCallNotFound) {
			return CallInfo{}, ErrCallNotFound
		}
		return CallInfo{}, fmt.Errorf("%w: GetCallInfo - vapi get call: %v", ErrProvider, err)
	}

	return CallInfo{
		ExternalID: call.ID,
		Status:     mapVapiStatus(call.Status),
		Transcript: call.Transcript,
		StartedAt:  call.StartedAt,
		EndedAt:    call.EndedAt,
	}, nil
}

func mapVapiStatus(status string) CallStatus {
	switch status {
	case "queued", "ringing":
		return StatusQueued
	case "in-progress", "forwarding":
		return StatusInProgress
	case "ended":
		return StatusCompleted
	default:
		return StatusFailed
	}
}

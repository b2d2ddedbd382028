package retell_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/api/webhooks"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

const (
	providerName    = "retell"
	signatureHeader = "x-retell-signature"

	msgInvalidPayload   = "invalid webhook payload"
	msgInvalidSignature = "invalid webhook signature"
)

type Handler struct {
	callService CallService
	secret      string
	logger      Logger
}

func NewHandler(callService CallService, secret string, logger Logger) *Handler {
	return &Handler{
		callService: callService,
		secret:      secret,
		logger:      logger,
	}
}

// Handle POST /webhooks/retell
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /webhooks/retell - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	// Пустой секрет отключает проверку подписи (локальная разработка)
	if h.secret == "" {
		h.logger.Warn("POST /webhooks/retell - Signature verification disabled, no secret configured")
	} else if !webhooks.VerifyHMACSHA256(h.secret, body, r.Header.Get(signatureHeader)) {
		h.logger.Warn("POST /webhooks/retell - Signature mismatch")
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	var envelope WebhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		h.logger.Warn("POST /webhooks/retell - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	switch envelope.Event {
	case eventCallStarted:
		h.handleCallStarted(w, r, envelope.Call)
	case eventCallEnded:
		h.handleCallEnded(w, r, envelope.Call)
	default:
		// Прочие события (call_analyzed и т.п.) подтверждаем без обработки
		h.logger.Info("POST /webhooks/retell - Ignoring event %q", envelope.Event)
		handlers.RespondJSON(w, http.StatusOK, nil)
	}
}

func (h *Handler) handleCallStarted(w http.ResponseWriter, r *http.Request, call CallInfo) {
	if call.Direction != "inbound" {
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	if _, err := h.callService.RecordInbound(r.Context(), call.FromNumber, providerName, call.CallID); err != nil {
		h.logger.Error("POST /webhooks/retell - Failed to record inbound call %s: %v", call.CallID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) handleCallEnded(w http.ResponseWriter, r *http.Request, call CallInfo) {
	var transcript *string
	if call.Transcript != "" {
		transcript = &call.Transcript
	}

	status := domain.CallStatusCompleted
	if call.CallStatus == "error" {
		status = domain.CallStatusFailed
	}

	_, err := h.callService.FinishByExternalID(r.Context(), &models.FinishCallRequest{
		ExternalID: call.CallID,
		Status:     status,
		Transcript: transcript,
		StartedAt:  millisToTime(call.StartTimestamp),
		EndedAt:    millisToTime(call.EndTimestamp),
	})
	if err != nil && !errors.Is(err, calls.ErrCallNotFound) {
		h.logger.Error("POST /webhooks/retell - Failed to finish call %s: %v", call.CallID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

func millisToTime(millis int64) *time.Time {
	if millis == 0 {
		return nil
	}

	t := time.UnixMilli(millis).UTC()
	return &t
}

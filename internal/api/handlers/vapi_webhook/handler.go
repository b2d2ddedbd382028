package vapi_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/api/webhooks"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

const (
	providerName    = "vapi"
	signatureHeader = "x-vapi-signature"

	msgInvalidPayload   = "invalid webhook payload"
	msgInvalidSignature = "invalid webhook signature"
)

type Handler struct {
	callService CallService
	dispatcher  FunctionDispatcher
	secret      string
	logger      Logger
}

func NewHandler(callService CallService, dispatcher FunctionDispatcher, secret string, logger Logger) *Handler {
	return &Handler{
		callService: callService,
		dispatcher:  dispatcher,
		secret:      secret,
		logger:      logger,
	}
}

// Handle POST /webhooks/vapi
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /webhooks/vapi - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	// Пустой секрет отключает проверку подписи (локальная разработка)
	if h.secret == "" {
		h.logger.Warn("POST /webhooks/vapi - Signature verification disabled, no secret configured")
	} else if !webhooks.VerifyHMACSHA256(h.secret, body, r.Header.Get(signatureHeader)) {
		h.logger.Warn("POST /webhooks/vapi - Signature mismatch")
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	var envelope WebhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		h.logger.Warn("POST /webhooks/vapi - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	msg := envelope.Message
	switch msg.Type {
	case messageStatusUpdate:
		h.handleStatusUpdate(w, r, msg)
	case messageEndOfCallReport:
		h.handleEndOfCall(w, r, msg)
	case messageToolCalls:
		h.handleToolCalls(w, r, msg)
	default:
		// Неизвестные типы сообщений подтверждаем, чтобы Vapi не ретраил
		h.logger.Info("POST /webhooks/vapi - Ignoring message type %q", msg.Type)
		handlers.RespondJSON(w, http.StatusOK, nil)
	}
}

func (h *Handler) handleStatusUpdate(w http.ResponseWriter, r *http.Request, msg WebhookMessage) {
	if msg.Status != "in-progress" || msg.Call == nil || msg.Call.Customer == nil {
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	if _, err := h.callService.RecordInbound(r.Context(), msg.Call.Customer.Number, providerName, msg.Call.ID); err != nil {
		h.logger.Error("POST /webhooks/vapi - Failed to record inbound call %s: %v", msg.Call.ID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) handleEndOfCall(w http.ResponseWriter, r *http.Request, msg WebhookMessage) {
	if msg.Call == nil {
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	var transcript *string
	if msg.Transcript != "" {
		transcript = &msg.Transcript
	}

	_, err := h.callService.FinishByExternalID(r.Context(), &models.FinishCallRequest{
		ExternalID: msg.Call.ID,
		Status:     domain.CallStatusCompleted,
		Transcript: transcript,
		StartedAt:  msg.StartedAt,
		EndedAt:    msg.EndedAt,
	})
	if err != nil && !errors.Is(err, calls.ErrCallNotFound) {
		h.logger.Error("POST /webhooks/vapi - Failed to finish call %s: %v", msg.Call.ID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) handleToolCalls(w http.ResponseWriter, r *http.Request, msg WebhookMessage) {
	resp := ToolCallResponse{Results: make([]ToolCallResult, 0, len(msg.ToolCalls))}

	for _, call := range msg.ToolCalls {
		result, err := h.dispatcher.Dispatch(r.Context(), call.Function.Name, call.Function.Arguments)
		if err != nil {
			// Ошибка возвращается ассистенту текстом, чтобы он мог
			// переформулировать запрос звонящему
			h.logger.Warn("POST /webhooks/vapi - Function %s failed: %v", call.Function.Name, err)
			resp.Results = append(resp.Results, ToolCallResult{
				ToolCallID: call.ID,
				Result:     err.Error(),
			})
			continue
		}

		encoded, err := json.Marshal(result)
		if err != nil {
			h.logger.Error("POST /webhooks/vapi - Failed to encode function result: %v", err)
			handlers.RespondInternalError(w)
			return
		}

		resp.Results = append(resp.Results, ToolCallResult{
			ToolCallID: call.ID,
			Result:     string(encoded),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

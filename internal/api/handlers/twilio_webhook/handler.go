package twilio_webhook

import (
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/api/webhooks"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

const (
	providerName    = "twilio"
	signatureHeader = "X-Twilio-Signature"

	msgInvalidPayload   = "invalid webhook payload"
	msgInvalidSignature = "invalid webhook signature"

	greeting = "Thank you for calling. Please hold while we connect you to our assistant."
)

// twimlResponse ответ в формате TwiML
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Say     string   `xml:"Say,omitempty"`
}

type Handler struct {
	callService CallService
	authToken   string
	publicURL   string
	logger      Logger
}

// NewHandler создает обработчик вебхуков Twilio. publicURL это внешний
// адрес сервиса, по которому Twilio вызывает вебхуки; он участвует
// в проверке подписи.
func NewHandler(callService CallService, authToken, publicURL string, logger Logger) *Handler {
	return &Handler{
		callService: callService,
		authToken:   authToken,
		publicURL:   publicURL,
		logger:      logger,
	}
}

// HandleVoice POST /webhooks/twilio/voice
// Регистрирует входящий звонок и возвращает TwiML приветствие.
func (h *Handler) HandleVoice(w http.ResponseWriter, r *http.Request) {
	if !h.verify(r, "/webhooks/twilio/voice") {
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	callSID := r.PostFormValue("CallSid")
	from := r.PostFormValue("From")
	if callSID == "" || from == "" {
		h.logger.Warn("POST /webhooks/twilio/voice - Missing CallSid or From")
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	if _, err := h.callService.RecordInbound(r.Context(), from, providerName, callSID); err != nil {
		h.logger.Error("POST /webhooks/twilio/voice - Failed to record inbound call %s: %v", callSID, err)
	}

	h.respondTwiML(w, twimlResponse{Say: greeting})
}

// HandleStatus POST /webhooks/twilio/status
// Колбэк статуса звонка; завершенные и сорвавшиеся звонки закрываются в журнале.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if !h.verify(r, "/webhooks/twilio/status") {
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	callSID := r.PostFormValue("CallSid")
	callStatus := r.PostFormValue("CallStatus")

	var status domain.CallStatus
	switch callStatus {
	case "completed":
		status = domain.CallStatusCompleted
	case "busy", "failed", "no-answer", "canceled":
		status = domain.CallStatusFailed
	default:
		// Промежуточные статусы (queued, ringing, in-progress) подтверждаем
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	_, err := h.callService.FinishByExternalID(r.Context(), &models.FinishCallRequest{
		ExternalID: callSID,
		Status:     status,
	})
	if err != nil && !errors.Is(err, calls.ErrCallNotFound) {
		h.logger.Error("POST /webhooks/twilio/status - Failed to finish call %s: %v", callSID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) verify(r *http.Request, path string) bool {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("Twilio webhook - Failed to parse form: %v", err)
		return false
	}

	// Пустой токен отключает проверку подписи (локальная разработка)
	if h.authToken == "" {
		h.logger.Warn("Twilio webhook - Signature verification disabled, no auth token configured")
		return true
	}

	ok := webhooks.VerifyTwilioSignature(h.authToken, h.publicURL+path, r.PostForm, r.Header.Get(signatureHeader))
	if !ok {
		h.logger.Warn("Twilio webhook - Signature mismatch for %s", path)
	}

	return ok
}

func (h *Handler) respondTwiML(w http.ResponseWriter, resp twimlResponse) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)

	encoded, err := xml.Marshal(resp)
	if err != nil {
		h.logger.Error("Twilio webhook - Failed to encode TwiML: %v", err)
		return
	}

	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(encoded)
}

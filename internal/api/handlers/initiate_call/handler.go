package initiate_call

import (
	"errors"
	"net/http"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgProviderDown       = "voice provider is unavailable"
)

type Handler struct {
	service CallService
	logger  Logger
}

func NewHandler(service CallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.InitiateCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.InitiateCall(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calls.ErrInvalidInput):
			h.logger.Warn("POST /calls - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, calls.ErrProviderUnavailable):
			h.logger.Error("POST /calls - Provider unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderDown)

		default:
			h.logger.Error("POST /calls - Failed to initiate call: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calls - Call initiated: id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

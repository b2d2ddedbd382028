package get_call

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls"
)

const (
	msgInvalidCallID = "invalid call id"
	msgNotFound      = "call not found"
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

// Handle GET /api/v1/calls/{callId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	callID, err := strconv.ParseInt(vars["callId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /calls/{id} - Invalid call ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCallID)
		return
	}

	resp, err := h.service.GetByID(r.Context(), callID)
	if err != nil {
		switch {
		case errors.Is(err, calls.ErrCallNotFound):
			h.logger.Warn("GET /calls/{id} - Not found: call_id=%d", callID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /calls/{id} - Failed to fetch call id=%d: %v", callID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

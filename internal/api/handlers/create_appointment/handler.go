package create_appointment

import (
	"errors"
	"net/http"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	uc "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotAvailable   = "requested slot is not available"
	msgBackendDown        = "scheduling backend is unavailable"
)

type Handler struct {
	useCase     CreateAppointmentUseCase
	callService CallService
	logger      Logger
}

func NewHandler(useCase CreateAppointmentUseCase, callService CallService, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		callService: callService,
		logger:      logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, uc.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: %v", err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, uc.ErrBackendUnavailable):
			h.logger.Error("POST /appointments - Backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendDown)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Связываем запись со звонком, если запись создана во время звонка
	if req.CallID != nil {
		if err := h.callService.LinkAppointment(r.Context(), *req.CallID, resp.ID); err != nil {
			h.logger.Warn("POST /appointments - Failed to link call id=%d: %v", *req.CallID, err)
		}
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}

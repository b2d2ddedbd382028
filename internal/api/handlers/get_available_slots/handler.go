package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	uc "github.com/callassist/CallAssist-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "invalid or missing date, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid duration"
	msgBackendDown     = "scheduling backend is unavailable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := 0
	if raw := r.URL.Query().Get("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	resp, err := h.useCase.Execute(r.Context(), &uc.Request{
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, uc.ErrBackendUnavailable):
			h.logger.Error("GET /availability - Backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendDown)

		default:
			h.logger.Error("GET /availability - Failed to resolve slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, domain.DateFormat))
}

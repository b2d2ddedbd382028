package get_analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls"
	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

const (
	msgInvalidPeriod = "invalid period, expected from=YYYY-MM-DD&to=YYYY-MM-DD"
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

// Handle GET /api/v1/analytics?from=YYYY-MM-DD&to=YYYY-MM-DD
// Пустой период означает последние 30 дней.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		from, to time.Time
		err      error
	)

	fromRaw := r.URL.Query().Get("from")
	toRaw := r.URL.Query().Get("to")

	switch {
	case fromRaw == "" && toRaw == "":
		to = time.Now()
		from = to.AddDate(0, 0, -30)
	default:
		from, err = time.Parse(domain.DateFormat, fromRaw)
		if err != nil {
			h.logger.Warn("GET /analytics - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}

		to, err = time.Parse(domain.DateFormat, toRaw)
		if err != nil {
			h.logger.Warn("GET /analytics - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		// Верхняя граница включает весь день to
		to = to.AddDate(0, 0, 1)
	}

	resp, err := h.service.GetAnalytics(r.Context(), &models.AnalyticsRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, calls.ErrInvalidInput):
			h.logger.Warn("GET /analytics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /analytics - Failed to build analytics: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

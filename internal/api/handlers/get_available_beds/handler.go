package get_available_beds

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/internal/service/availability"
)

const (
	msgMissingTimeRange  = "параметры start и end обязательны"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidTimeRange  = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/beds/available
// Query params: start (required, RFC 3339), end (required, RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /beds/available - Missing time range")
		handlers.RespondBadRequest(w, msgMissingTimeRange)
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		h.logger.Warn("GET /beds/available - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		h.logger.Warn("GET /beds/available - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.service.GetAvailableBeds(r.Context(), domain.TimeRange{Start: start, End: end})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidTimeRange):
			h.logger.Warn("GET /beds/available - Invalid time range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /beds/available - Failed to get available beds: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /beds/available - Retrieved %d beds", len(result.Beds))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package check_bed_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/service/availability"
	"github.com/m04kA/SPA-BedService/pkg/ptr"
)

const (
	msgInvalidBedID      = "некорректный ID кровати"
	msgMissingTimeRange  = "параметры start и end обязательны"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidTimeRange  = "время начала должно быть раньше времени окончания"
	msgInvalidExcludeID  = "некорректный ID исключаемой аллокации"
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

// Handle GET /api/v1/beds/{bedId}/availability
// Query params: start (required, RFC 3339), end (required, RFC 3339),
// excludeAllocationId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bedID, err := strconv.ParseInt(vars["bedId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /beds/{id}/availability - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /beds/{id}/availability - Missing time range: bed_id=%d", bedID)
		handlers.RespondBadRequest(w, msgMissingTimeRange)
		return
	}

	rng, err := parseTimeRange(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /beds/{id}/availability - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	var excludeID *int64
	if excludeStr := r.URL.Query().Get("excludeAllocationId"); excludeStr != "" {
		id, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /beds/{id}/availability - Invalid exclude ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = ptr.Ptr(id)
	}

	available, err := h.service.IsBedAvailable(r.Context(), bedID, rng, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidTimeRange):
			h.logger.Warn("GET /beds/{id}/availability - Invalid time range: bed_id=%d", bedID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /beds/{id}/availability - Failed to check availability: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /beds/{id}/availability - Checked: bed_id=%d, available=%t", bedID, available)
	handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{
		BedID:     bedID,
		StartTime: rng.Start,
		EndTime:   rng.End,
		Available: available,
	})
}

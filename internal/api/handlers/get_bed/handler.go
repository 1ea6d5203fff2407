package get_bed

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/service/beds"
)

const (
	msgInvalidBedID = "некорректный ID кровати"
	msgBedNotFound  = "кровать не найдена"
)

type Handler struct {
	service BedService
	logger  Logger
}

func NewHandler(service BedService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/beds/{bedId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bedID, err := strconv.ParseInt(vars["bedId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /beds/{id} - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	result, err := h.service.GetBed(r.Context(), bedID)
	if err != nil {
		switch {
		case errors.Is(err, beds.ErrBedNotFound):
			h.logger.Warn("GET /beds/{id} - Bed not found: bed_id=%d", bedID)
			handlers.RespondNotFound(w, msgBedNotFound)

		default:
			h.logger.Error("GET /beds/{id} - Failed to get bed: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /beds/{id} - Retrieved: bed_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

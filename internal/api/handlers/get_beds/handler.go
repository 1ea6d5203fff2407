package get_beds

import (
	"net/http"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
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

// Handle GET /api/v1/beds
// Полный список кроватей в порядке сетки, включая maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBeds(r.Context())
	if err != nil {
		h.logger.Error("GET /beds - Failed to list beds: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /beds - Retrieved %d beds", len(result.Beds))
	handlers.RespondJSON(w, http.StatusOK, result)
}

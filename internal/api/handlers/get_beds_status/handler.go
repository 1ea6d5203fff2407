package get_beds_status

import (
	"net/http"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
)

type Handler struct {
	service StatusService
	logger  Logger
}

func NewHandler(service StatusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/beds/status
// Статусная доска: вычисленный статус каждой кровати на текущий момент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllBedsWithStatus(r.Context())
	if err != nil {
		h.logger.Error("GET /beds/status - Failed to get beds status: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /beds/status - Retrieved status for %d beds", len(result.Beds))
	handlers.RespondJSON(w, http.StatusOK, result)
}

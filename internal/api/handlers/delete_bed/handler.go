package delete_bed

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

// Handle DELETE /api/v1/beds/{bedId}
// Аллокации удаленной кровати остаются в истории: FK с ON DELETE CASCADE
// здесь нет намеренно, удаление кровати с бронями вернет ошибку БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bedID, err := strconv.ParseInt(vars["bedId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /beds/{id} - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	if err := h.service.DeleteBed(r.Context(), bedID); err != nil {
		switch {
		case errors.Is(err, beds.ErrBedNotFound):
			h.logger.Warn("DELETE /beds/{id} - Bed not found: bed_id=%d", bedID)
			handlers.RespondNotFound(w, msgBedNotFound)

		default:
			h.logger.Error("DELETE /beds/{id} - Failed to delete bed: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /beds/{id} - Deleted: bed_id=%d", bedID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

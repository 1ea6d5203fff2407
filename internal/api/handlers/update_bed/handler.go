package update_bed

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/service/beds"
	"github.com/m04kA/SPA-BedService/internal/service/beds/models"
)

const (
	msgInvalidBedID       = "некорректный ID кровати"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус кровати"
	msgBedNotFound        = "кровать не найдена"
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

// Handle PATCH /api/v1/beds/{bedId}
// Единственный способ перевести кровать в maintenance и вывести из него
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bedID, err := strconv.ParseInt(vars["bedId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /beds/{id} - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	var req models.UpdateBedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /beds/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBed(r.Context(), bedID, &req)
	if err != nil {
		switch {
		case errors.Is(err, beds.ErrBedNotFound):
			h.logger.Warn("PATCH /beds/{id} - Bed not found: bed_id=%d", bedID)
			handlers.RespondNotFound(w, msgBedNotFound)

		case errors.Is(err, beds.ErrInvalidStatus):
			h.logger.Warn("PATCH /beds/{id} - Invalid status: bed_id=%d, error=%v", bedID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /beds/{id} - Failed to update bed: bed_id=%d, error=%v", bedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /beds/{id} - Updated: bed_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

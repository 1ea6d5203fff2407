package create_bed

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/service/beds"
	"github.com/m04kA/SPA-BedService/internal/service/beds/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingBedNumber   = "номер кровати обязателен"
	msgInvalidGrid        = "позиция в сетке должна быть неотрицательной"
	msgDuplicateBedNumber = "кровать с таким номером уже существует"
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

// Handle POST /api/v1/beds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /beds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BedNumber == "" {
		h.logger.Warn("POST /beds - Missing bed number")
		handlers.RespondBadRequest(w, msgMissingBedNumber)
		return
	}
	if req.GridRow < 0 || req.GridCol < 0 {
		h.logger.Warn("POST /beds - Invalid grid position: row=%d, col=%d", req.GridRow, req.GridCol)
		handlers.RespondBadRequest(w, msgInvalidGrid)
		return
	}

	result, err := h.service.CreateBed(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, beds.ErrDuplicateBedNumber):
			h.logger.Warn("POST /beds - Duplicate bed number: %s", req.BedNumber)
			handlers.RespondConflict(w, msgDuplicateBedNumber)

		default:
			h.logger.Error("POST /beds - Failed to create bed: number=%s, error=%v", req.BedNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /beds - Created: id=%d, number=%s", result.ID, result.BedNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

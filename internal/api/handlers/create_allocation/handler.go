package create_allocation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	createAllocation "github.com/m04kA/SPA-BedService/internal/usecase/create_allocation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC 3339"
	msgValidationFailed   = "некорректные данные бронирования"
	msgBedNotFound        = "кровать не найдена"
	msgBedInMaintenance   = "кровать на обслуживании"
	msgCustomerNotFound   = "клиент не найден"
	msgPackageNotFound    = "пакет не найден"
	msgTimeConflict       = "выбранное время пересекается с существующей бронью"
)

type Handler struct {
	useCase CreateAllocationUseCase
	logger  Logger
}

func NewHandler(useCase CreateAllocationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAllocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAllocation.ErrValidation):
			h.logger.Warn("POST /allocations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createAllocation.ErrBedNotFound):
			h.logger.Warn("POST /allocations - Bed not found: bed_id=%d", req.BedID)
			handlers.RespondNotFound(w, msgBedNotFound)

		case errors.Is(err, createAllocation.ErrBedInMaintenance):
			h.logger.Warn("POST /allocations - Bed in maintenance: bed_id=%d", req.BedID)
			handlers.RespondConflict(w, msgBedInMaintenance)

		case errors.Is(err, createAllocation.ErrCustomerNotFound):
			h.logger.Warn("POST /allocations - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAllocation.ErrPackageNotFound):
			h.logger.Warn("POST /allocations - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createAllocation.ErrTimeConflict):
			h.logger.Warn("POST /allocations - Time conflict: bed_id=%d, start=%s", req.BedID, req.StartTime)
			handlers.RespondConflict(w, msgTimeConflict)

		default:
			h.logger.Error("POST /allocations - Failed to create allocation: bed_id=%d, error=%v", req.BedID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /allocations - Created: id=%d, booking=%s, bed_id=%d",
		result.ID, result.BookingNumber, result.BedID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package get_bed_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/domain"
	getDaySchedule "github.com/m04kA/SPA-BedService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidBedID = "некорректный ID кровати"
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/beds/{bedId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bedID, err := strconv.ParseInt(vars["bedId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /beds/{id}/schedule - Invalid bed ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /beds/{id}/schedule - Missing date: bed_id=%d", bedID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /beds/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		BedID: bedID,
		Date:  date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidBedID):
			h.logger.Warn("GET /beds/{id}/schedule - Invalid bed ID: bed_id=%d", bedID)
			handlers.RespondBadRequest(w, msgInvalidBedID)

		case errors.Is(err, getDaySchedule.ErrInvalidDate):
			h.logger.Warn("GET /beds/{id}/schedule - Invalid date: bed_id=%d, date=%s", bedID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /beds/{id}/schedule - Failed to get schedule: bed_id=%d, date=%s, error=%v",
				bedID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /beds/{id}/schedule - Retrieved: bed_id=%d, date=%s, slots=%d",
		bedID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

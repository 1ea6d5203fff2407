package get_beds_with_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/internal/service/availability"
	"github.com/m04kA/SPA-BedService/pkg/types"
)

const (
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgIncompleteWindow  = "параметры start и end задаются только вместе"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается HH:MM"
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

// Handle GET /api/v1/beds/schedule
// Query params: date (required, YYYY-MM-DD), start + end (optional, HH:MM) -
// окно, по которому размечается доступность каждой кровати
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /beds/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /beds/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	window, err := parseWindow(r, date)
	if err != nil {
		h.logger.Warn("GET /beds/schedule - Invalid window: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetBedsWithAvailability(r.Context(), date, window)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidTimeRange):
			h.logger.Warn("GET /beds/schedule - Invalid time range: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /beds/schedule - Failed to get beds: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /beds/schedule - Retrieved %d beds for %s", len(result.Beds), dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseWindow разбирает опциональное окно start/end (HH:MM) на указанную дату
func parseWindow(r *http.Request, date time.Time) (*domain.TimeRange, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" && endStr == "" {
		return nil, nil
	}
	if startStr == "" || endStr == "" {
		return nil, errors.New(msgIncompleteWindow)
	}

	startTS, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, errors.New(msgInvalidTimeFormat)
	}
	endTS, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return nil, errors.New(msgInvalidTimeFormat)
	}

	start, err := startTS.At(date)
	if err != nil {
		return nil, errors.New(msgInvalidTimeFormat)
	}
	end, err := endTS.At(date)
	if err != nil {
		return nil, errors.New(msgInvalidTimeFormat)
	}

	return &domain.TimeRange{Start: start, End: end}, nil
}

package get_beds_with_availability

import (
	"context"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности кроватей
type AvailabilityService interface {
	GetBedsWithAvailability(ctx context.Context, date time.Time, window *domain.TimeRange) (*models.BedScheduleResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

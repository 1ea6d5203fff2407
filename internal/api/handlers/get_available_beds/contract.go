package get_available_beds

import (
	"context"

	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности кроватей
type AvailabilityService interface {
	GetAvailableBeds(ctx context.Context, rng domain.TimeRange) (*models.BedListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

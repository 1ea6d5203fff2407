package check_bed_availability

import (
	"context"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// AvailabilityService интерфейс сервиса доступности кроватей
type AvailabilityService interface {
	IsBedAvailable(ctx context.Context, bedID int64, rng domain.TimeRange, excludeAllocationID *int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_beds_status

import (
	"context"

	"github.com/m04kA/SPA-BedService/internal/service/status/models"
)

// StatusService интерфейс сервиса статусов кроватей
type StatusService interface {
	GetAllBedsWithStatus(ctx context.Context) (*models.BedStatusListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

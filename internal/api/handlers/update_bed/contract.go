package update_bed

import (
	"context"

	"github.com/m04kA/SPA-BedService/internal/service/beds/models"
)

// BedService интерфейс сервиса управления кроватями
type BedService interface {
	UpdateBed(ctx context.Context, id int64, req *models.UpdateBedRequest) (*models.BedResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

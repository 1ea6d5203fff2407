package get_bed_day_schedule

import (
	"context"

	getDaySchedule "github.com/m04kA/SPA-BedService/internal/usecase/get_day_schedule"
)

// GetDayScheduleUseCase интерфейс use case расписания кровати на день
type GetDayScheduleUseCase interface {
	Execute(ctx context.Context, req *getDaySchedule.Request) (*getDaySchedule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

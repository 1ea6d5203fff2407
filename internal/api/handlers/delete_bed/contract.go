package delete_bed

import "context"

// BedService интерфейс сервиса управления кроватями
type BedService interface {
	DeleteBed(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

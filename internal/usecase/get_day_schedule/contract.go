package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// BedRepository интерфейс репозитория кроватей
type BedRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
}

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	ListForDate(ctx context.Context, date time.Time, bedID *int64) ([]*domain.BedAllocation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

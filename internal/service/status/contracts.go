package status

import (
	"context"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// BedRepository интерфейс репозитория кроватей
type BedRepository interface {
	List(ctx context.Context) ([]*domain.Bed, error)
	UpdateStatusForIDs(ctx context.Context, ids []int64, status domain.BedStatus) error
	SetStatusExcluding(ctx context.Context, ids []int64, status domain.BedStatus) error
}

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	ListCurrentAndUpcoming(ctx context.Context, now, horizon time.Time) ([]*domain.BedAllocation, error)
	OccupiedBedIDs(ctx context.Context, now time.Time) ([]int64, error)
	UpcomingBedIDs(ctx context.Context, now, horizon time.Time) ([]int64, error)
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

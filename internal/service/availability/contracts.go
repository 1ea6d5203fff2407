package availability

import (
	"context"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// BedRepository интерфейс репозитория кроватей
type BedRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
	ListBookable(ctx context.Context) ([]*domain.Bed, error)
}

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	HasOverlap(ctx context.Context, bedID int64, rng domain.TimeRange, excludeID *int64) (bool, error)
	ConflictingBedIDs(ctx context.Context, rng domain.TimeRange) ([]int64, error)
	ListForDate(ctx context.Context, date time.Time, bedID *int64) ([]*domain.BedAllocation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

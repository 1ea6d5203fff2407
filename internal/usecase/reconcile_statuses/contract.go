package reconcile_statuses

import (
	"context"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// AllocationRepository интерфейс репозитория аллокаций
type AllocationRepository interface {
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
	StartDue(ctx context.Context, now time.Time) (int64, error)
	ListOverdueUnpaid(ctx context.Context, cutoff time.Time) ([]*domain.BedAllocation, error)
	CancelWithNote(ctx context.Context, id int64, note string) error
}

// BedStatusReconciler интерфейс пересчета кэшируемых статусов кроватей
type BedStatusReconciler interface {
	ReconcileBedStatuses(ctx context.Context, now time.Time) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

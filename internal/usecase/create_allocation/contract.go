package create_allocation

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
	Create(ctx context.Context, a *domain.BedAllocation) (*domain.BedAllocation, error)
	HasOverlap(ctx context.Context, bedID int64, rng domain.TimeRange, excludeID *int64) (bool, error)
}

// CatalogRepository интерфейс справочника клиентов и пакетов
type CatalogRepository interface {
	GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetPackageByID(ctx context.Context, id int64) (*domain.Package, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package beds

import (
	"context"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// BedRepository интерфейс репозитория кроватей
type BedRepository interface {
	Create(ctx context.Context, b *domain.Bed) (*domain.Bed, error)
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
	List(ctx context.Context) ([]*domain.Bed, error)
	Update(ctx context.Context, b *domain.Bed) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

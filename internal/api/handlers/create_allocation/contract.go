package create_allocation

import (
	"context"

	createAllocation "github.com/m04kA/SPA-BedService/internal/usecase/create_allocation"
)

// CreateAllocationUseCase интерфейс use case создания аллокации
type CreateAllocationUseCase interface {
	Execute(ctx context.Context, req *createAllocation.Request) (*createAllocation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

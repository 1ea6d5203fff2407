package run_reconciliation

import (
	"context"

	reconcileStatuses "github.com/m04kA/SPA-BedService/internal/usecase/reconcile_statuses"
)

// ReconcileStatusesUseCase интерфейс use case сверки статусов
type ReconcileStatusesUseCase interface {
	Execute(ctx context.Context) (*reconcileStatuses.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

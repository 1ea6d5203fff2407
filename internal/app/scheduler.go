package app

import (
	"context"
	"time"

	reconcileStatuses "github.com/m04kA/SPA-BedService/internal/usecase/reconcile_statuses"
)

// ReconcileUseCase интерфейс use case сверки статусов
type ReconcileUseCase interface {
	Execute(ctx context.Context) (*reconcileStatuses.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает сверку статусов раз в заданный интервал
//
// Сверка идемпотентна, поэтому наложение ручного запуска через API
// на тик планировщика безопасно и не требует блокировок
type Scheduler struct {
	useCase  ReconcileUseCase
	interval time.Duration
	logger   Logger
	stopChan chan struct{}
}

// NewScheduler создает новый планировщик
func NewScheduler(useCase ReconcileUseCase, interval time.Duration, logger Logger) *Scheduler {
	return &Scheduler{
		useCase:  useCase,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновый цикл сверки
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Scheduler: starting, interval=%s", s.interval)
	go s.run(ctx)
}

// Stop останавливает фоновый цикл
func (s *Scheduler) Stop() {
	s.logger.Info("Scheduler: stopping")
	close(s.stopChan)
}

func (s *Scheduler) run(ctx context.Context) {
	// Первый проход сразу при старте, чтобы не ждать целый интервал
	// после рестарта сервиса
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stopChan:
			s.logger.Info("Scheduler: stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Scheduler: cancelled")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if _, err := s.useCase.Execute(ctx); err != nil {
		s.logger.Error("Scheduler: reconciliation pass failed: %v", err)
	}
}

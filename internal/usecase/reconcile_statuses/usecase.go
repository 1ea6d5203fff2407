package reconcile_statuses

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// UseCase use case фоновой сверки статусов аллокаций и кроватей
//
// Выполняется раз в минуту. Шаги строго упорядочены:
//
//  1. in_progress -> completed для истекших аллокаций
//  2. confirmed   -> in_progress для наступивших
//  3. автоотмена confirmed старше 15 минут без подходящего инвойса
//  4. пересчет кэшируемой колонки beds.status
//
// Порядок важен: автоотмена не должна трогать аллокации, которые
// шаг 2 только что перевел в in_progress, а пересчет колонки обязан
// видеть итог всех трех переходов
type UseCase struct {
	allocRepo    AllocationRepository
	reconciler   BedStatusReconciler
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocRepo AllocationRepository,
	reconciler BedStatusReconciler,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocRepo:    allocRepo,
		reconciler:   reconciler,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет один проход сверки
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	resp := &Response{}

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		completed, err := uc.allocRepo.CompleteElapsed(ctx, now)
		if err != nil {
			return fmt.Errorf("complete elapsed: %w", err)
		}
		resp.Completed = completed

		started, err := uc.allocRepo.StartDue(ctx, now)
		if err != nil {
			return fmt.Errorf("start due: %w", err)
		}
		resp.Started = started

		cancelled, err := uc.cancelOverdueUnpaid(ctx, now)
		if err != nil {
			return fmt.Errorf("cancel overdue unpaid: %w", err)
		}
		resp.Cancelled = cancelled

		if err := uc.reconciler.ReconcileBedStatuses(ctx, now); err != nil {
			return fmt.Errorf("reconcile bed statuses: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ReconcileStatuses: run failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if resp.Completed > 0 || resp.Started > 0 || resp.Cancelled > 0 {
		uc.logger.Info("ReconcileStatuses: completed=%d, started=%d, cancelled=%d",
			resp.Completed, resp.Started, resp.Cancelled)
	}
	return resp, nil
}

// cancelOverdueUnpaid отменяет confirmed аллокации, начавшиеся больше
// 15 минут назад и не набравшие ни одного подходящего инвойса
//
// Отмена идет по одной с guard-ом по статусу в самом UPDATE, поэтому
// аллокация, успевшая смениться между выборкой и отменой, будет
// молча пропущена
func (uc *UseCase) cancelOverdueUnpaid(ctx context.Context, now time.Time) (int64, error) {
	overdue, err := uc.allocRepo.ListOverdueUnpaid(ctx, now.Add(-domain.LockWindow))
	if err != nil {
		return 0, fmt.Errorf("list overdue: %w", err)
	}

	var cancelled int64
	for _, a := range overdue {
		if err := uc.allocRepo.CancelWithNote(ctx, a.ID, domain.AutoCancelNote); err != nil {
			return cancelled, fmt.Errorf("cancel allocation id=%d: %w", a.ID, err)
		}
		uc.logger.Info("ReconcileStatuses: auto-cancelled allocation id=%d booking=%s",
			a.ID, a.BookingNumber)
		cancelled++
	}
	return cancelled, nil
}

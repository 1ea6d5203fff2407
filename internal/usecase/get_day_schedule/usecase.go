package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-BedService/internal/domain"
	bedstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
	"github.com/m04kA/SPA-BedService/pkg/ptr"
)

// UseCase use case для получения расписания кровати на день
type UseCase struct {
	bedRepo      BedRepository
	allocRepo    AllocationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bedRepo BedRepository, allocRepo AllocationRepository, logger Logger) *UseCase {
	return &UseCase{
		bedRepo:      bedRepo,
		allocRepo:    allocRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания кровати на день
//
// Для несуществующей кровати возвращается пустое расписание, а не ошибка:
// сетка статусной доски рисуется и для удаленных кроватей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: bed=%d, date=%s", req.BedID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		BedID: req.BedID,
		Date:  req.Date.Format(domain.DateFormat),
		Slots: []SlotView{},
	}

	if _, err := uc.bedRepo.GetByID(ctx, req.BedID); err != nil {
		if errors.Is(err, bedstorage.ErrBedNotFound) {
			uc.logger.Warn("GetDaySchedule: bed id=%d not found, returning empty schedule", req.BedID)
			return resp, nil
		}
		uc.logger.Error("GetDaySchedule: failed to get bed id=%d: %v", req.BedID, err)
		return nil, fmt.Errorf("%w: failed to get bed: %v", ErrInternal, err)
	}

	allocations, err := uc.allocRepo.ListForDate(ctx, req.Date, ptr.Ptr(req.BedID))
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list allocations for bed id=%d: %v", req.BedID, err)
		return nil, fmt.Errorf("%w: failed to list allocations: %v", ErrInternal, err)
	}

	resp.Slots = buildDaySlots(req.Date, allocations, uc.timeProvider.Now())

	uc.logger.Info("GetDaySchedule: bed=%d, date=%s, slots=%d",
		req.BedID, resp.Date, len(resp.Slots))
	return resp, nil
}

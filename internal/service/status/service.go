package status

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/internal/service/status/models"
)

// Service сервис проекции статусов кроватей
//
// Вычисляемая проекция (GetAllBedsWithStatus) - источник истины о состоянии
// кровати в моменте. Кэшируемая колонка beds.status лишь догоняет её
// через ReconcileBedStatuses и нужна для дешёвых чтений UI
type Service struct {
	bedRepo      BedRepository
	allocRepo    AllocationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статусов
func NewService(bedRepo BedRepository, allocRepo AllocationRepository, logger Logger) *Service {
	return &Service{
		bedRepo:      bedRepo,
		allocRepo:    allocRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetAllBedsWithStatus возвращает вычисленный статус каждой кровати
// на текущий момент, со строгим приоритетом (первое совпадение выигрывает):
//
//  1. maintenance - если кровать выведена из обслуживания
//  2. occupied    - оплаченная confirmed/in_progress аллокация покрывает now
//  3. booked_soon - неотменённая аллокация (оплата не важна) начинается
//     в ближайшие 15 минут
//  4. available   - всё остальное, включая будущие брони дальше 15 минут
//
// Асимметрия оплаты намеренная: неоплаченная бронь не должна блокировать
// walk-in посадку, но перед самым началом стол всё же подмораживается,
// потому что оплата может прийти с минуты на минуту
func (s *Service) GetAllBedsWithStatus(ctx context.Context) (*models.BedStatusListResponse, error) {
	now := s.timeProvider.Now()

	beds, err := s.bedRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetAllBedsWithStatus: failed to list beds: %v", err)
		return nil, fmt.Errorf("%w: GetAllBedsWithStatus - list beds: %v", ErrInternal, err)
	}

	// Текущие и предстоящие аллокации одним запросом, с деталями
	allocations, err := s.allocRepo.ListCurrentAndUpcoming(ctx, now, now.Add(domain.LockWindow))
	if err != nil {
		s.logger.Error("GetAllBedsWithStatus: failed to list allocations: %v", err)
		return nil, fmt.Errorf("%w: GetAllBedsWithStatus - list allocations: %v", ErrInternal, err)
	}

	byBed := make(map[int64][]*domain.BedAllocation)
	for _, a := range allocations {
		byBed[a.BedID] = append(byBed[a.BedID], a)
	}

	resp := &models.BedStatusListResponse{Beds: make([]models.BedStatusView, 0, len(beds))}
	for _, b := range beds {
		derived, driving := deriveBedStatus(b, byBed[b.ID], now)

		resp.Beds = append(resp.Beds, models.BedStatusView{
			ID:                b.ID,
			BedNumber:         b.BedNumber,
			DisplayName:       b.Label(),
			GridRow:           b.GridRow,
			GridCol:           b.GridCol,
			BedType:           b.BedType,
			Status:            string(derived),
			CurrentAllocation: models.FromDomainAllocationDetail(driving),
		})
	}

	s.logger.Info("GetAllBedsWithStatus: computed status for %d beds", len(resp.Beds))
	return resp, nil
}

// deriveBedStatus вычисляет статус кровати и аллокацию, его определившую
// Аллокации отсортированы по start_time, поэтому для booked_soon
// берётся ближайшая предстоящая
func deriveBedStatus(b *domain.Bed, allocations []*domain.BedAllocation, now time.Time) (domain.BedStatus, *domain.BedAllocation) {
	if b.InMaintenance() {
		return domain.BedStatusMaintenance, nil
	}

	for _, a := range allocations {
		if a.OccupiesAt(now) {
			return domain.BedStatusOccupied, a
		}
	}

	for _, a := range allocations {
		if a.StartsWithinLock(now) {
			return domain.BedStatusBookedSoon, a
		}
	}

	return domain.BedStatusAvailable, nil
}

// ReconcileBedStatuses пересчитывает и сохраняет кэшируемую колонку
// beds.status на момент now
//
// Работает наборами id, а не по одной кровати:
//   - occupied:    кровати с оплаченной активной аллокацией
//   - booked_soon: кровати с предстоящей аллокацией минус occupied
//   - available:   все остальные
//
// Кровати в maintenance не трогаются ни одной из веток (guard в репозитории)
func (s *Service) ReconcileBedStatuses(ctx context.Context, now time.Time) error {
	occupiedIDs, err := s.allocRepo.OccupiedBedIDs(ctx, now)
	if err != nil {
		s.logger.Error("ReconcileBedStatuses: failed to get occupied bed ids: %v", err)
		return fmt.Errorf("%w: ReconcileBedStatuses - occupied bed ids: %v", ErrInternal, err)
	}

	upcomingIDs, err := s.allocRepo.UpcomingBedIDs(ctx, now, now.Add(domain.LockWindow))
	if err != nil {
		s.logger.Error("ReconcileBedStatuses: failed to get upcoming bed ids: %v", err)
		return fmt.Errorf("%w: ReconcileBedStatuses - upcoming bed ids: %v", ErrInternal, err)
	}

	occupied := make(map[int64]struct{}, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = struct{}{}
	}

	// booked_soon = upcoming \ occupied: занятая кровать со следующей бронью
	// на подходе остаётся occupied
	bookedSoonIDs := make([]int64, 0, len(upcomingIDs))
	for _, id := range upcomingIDs {
		if _, ok := occupied[id]; !ok {
			bookedSoonIDs = append(bookedSoonIDs, id)
		}
	}

	if err := s.bedRepo.UpdateStatusForIDs(ctx, occupiedIDs, domain.BedStatusOccupied); err != nil {
		return fmt.Errorf("%w: ReconcileBedStatuses - set occupied: %v", ErrInternal, err)
	}

	if err := s.bedRepo.UpdateStatusForIDs(ctx, bookedSoonIDs, domain.BedStatusBookedSoon); err != nil {
		return fmt.Errorf("%w: ReconcileBedStatuses - set booked_soon: %v", ErrInternal, err)
	}

	nonAvailable := make([]int64, 0, len(occupiedIDs)+len(bookedSoonIDs))
	nonAvailable = append(nonAvailable, occupiedIDs...)
	nonAvailable = append(nonAvailable, bookedSoonIDs...)

	if err := s.bedRepo.SetStatusExcluding(ctx, nonAvailable, domain.BedStatusAvailable); err != nil {
		return fmt.Errorf("%w: ReconcileBedStatuses - set available: %v", ErrInternal, err)
	}

	s.logger.Info("ReconcileBedStatuses: occupied=%d, booked_soon=%d", len(occupiedIDs), len(bookedSoonIDs))
	return nil
}

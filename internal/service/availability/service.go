package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
	bedRepo "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
	"github.com/m04kA/SPA-BedService/internal/service/availability/models"
)

// Service сервис проверки доступности кроватей
//
// Все проверки конфликтов выполняются по самим аллокациям (полузакрытый
// интервальный тест), а не по кэшируемой колонке beds.status - колонка
// не авторитетна для решений о бронировании
type Service struct {
	bedRepo   BedRepository
	allocRepo AllocationRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(bedRepo BedRepository, allocRepo AllocationRepository, logger Logger) *Service {
	return &Service{
		bedRepo:   bedRepo,
		allocRepo: allocRepo,
		logger:    logger,
	}
}

// IsBedAvailable проверяет, свободна ли кровать на интервале [rng.Start, rng.End)
// Несуществующая кровать и кровать в maintenance считаются недоступными (не ошибка).
// excludeAllocationID исключает аллокацию из проверки - используется при
// перепроверке редактируемой брони
func (s *Service) IsBedAvailable(ctx context.Context, bedID int64, rng domain.TimeRange, excludeAllocationID *int64) (bool, error) {
	if !rng.IsValid() {
		s.logger.Warn("IsBedAvailable: invalid time range for bed=%d: start=%s end=%s",
			bedID, rng.Start.Format(time.RFC3339), rng.End.Format(time.RFC3339))
		return false, fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}

	b, err := s.bedRepo.GetByID(ctx, bedID)
	if err != nil {
		if errors.Is(err, bedRepo.ErrBedNotFound) {
			s.logger.Warn("IsBedAvailable: bed id=%d not found", bedID)
			return false, nil
		}
		s.logger.Error("IsBedAvailable: repository error for bed id=%d: %v", bedID, err)
		return false, fmt.Errorf("%w: IsBedAvailable - repository error: %v", ErrInternal, err)
	}

	if b.InMaintenance() {
		s.logger.Info("IsBedAvailable: bed id=%d is in maintenance", bedID)
		return false, nil
	}

	hasOverlap, err := s.allocRepo.HasOverlap(ctx, bedID, rng, excludeAllocationID)
	if err != nil {
		s.logger.Error("IsBedAvailable: overlap check failed for bed id=%d: %v", bedID, err)
		return false, fmt.Errorf("%w: IsBedAvailable - overlap check: %v", ErrInternal, err)
	}

	return !hasOverlap, nil
}

// GetAvailableBeds возвращает все не-maintenance кровати без конфликтующих
// аллокаций на интервале [rng.Start, rng.End)
//
// Конфликтующие bed_id вычисляются одним проходом по аллокациям, после чего
// кровати фильтруются по set-difference - O(beds + allocations) вместо
// проверки доступности для каждой кровати отдельно
func (s *Service) GetAvailableBeds(ctx context.Context, rng domain.TimeRange) (*models.BedListResponse, error) {
	if !rng.IsValid() {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}

	beds, err := s.bedRepo.ListBookable(ctx)
	if err != nil {
		s.logger.Error("GetAvailableBeds: failed to list beds: %v", err)
		return nil, fmt.Errorf("%w: GetAvailableBeds - list beds: %v", ErrInternal, err)
	}

	conflictingIDs, err := s.allocRepo.ConflictingBedIDs(ctx, rng)
	if err != nil {
		s.logger.Error("GetAvailableBeds: failed to get conflicting bed ids: %v", err)
		return nil, fmt.Errorf("%w: GetAvailableBeds - conflicting bed ids: %v", ErrInternal, err)
	}

	conflicting := make(map[int64]struct{}, len(conflictingIDs))
	for _, id := range conflictingIDs {
		conflicting[id] = struct{}{}
	}

	resp := &models.BedListResponse{Beds: make([]models.BedResponse, 0, len(beds))}
	for _, b := range beds {
		if _, ok := conflicting[b.ID]; ok {
			continue
		}
		resp.Beds = append(resp.Beds, models.FromDomainBed(b))
	}

	s.logger.Info("GetAvailableBeds: %d of %d beds available for window %s - %s",
		len(resp.Beds), len(beds), rng.Start.Format(time.RFC3339), rng.End.Format(time.RFC3339))

	return resp, nil
}

// GetBedsWithAvailability возвращает дневную сетку по всем не-maintenance
// кроватям: кэшированный статус, список броней на дату и, если задано окно, -
// признак доступности с перечнем конфликтующих броней для этого окна
func (s *Service) GetBedsWithAvailability(ctx context.Context, date time.Time, window *domain.TimeRange) (*models.BedScheduleResponse, error) {
	if window != nil && !window.IsValid() {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}

	beds, err := s.bedRepo.ListBookable(ctx)
	if err != nil {
		s.logger.Error("GetBedsWithAvailability: failed to list beds: %v", err)
		return nil, fmt.Errorf("%w: GetBedsWithAvailability - list beds: %v", ErrInternal, err)
	}

	// Все аллокации на дату одним запросом, дальше группируем по кроватям
	dayAllocations, err := s.allocRepo.ListForDate(ctx, date, nil)
	if err != nil {
		s.logger.Error("GetBedsWithAvailability: failed to list allocations: %v", err)
		return nil, fmt.Errorf("%w: GetBedsWithAvailability - list allocations: %v", ErrInternal, err)
	}

	byBed := make(map[int64][]*domain.BedAllocation, len(beds))
	for _, a := range dayAllocations {
		byBed[a.BedID] = append(byBed[a.BedID], a)
	}

	resp := &models.BedScheduleResponse{
		Date: date.Format(domain.DateFormat),
		Beds: make([]models.BedAvailabilityView, 0, len(beds)),
	}

	for _, b := range beds {
		view := models.BedAvailabilityView{
			ID:                  b.ID,
			BedNumber:           b.BedNumber,
			DisplayName:         b.Label(),
			GridRow:             b.GridRow,
			GridCol:             b.GridCol,
			BedType:             b.BedType,
			CurrentStatus:       string(b.Status),
			IsAvailable:         true,
			ConflictingBookings: []models.BookingRef{},
			DayBookings:         []models.BookingRef{},
		}

		allocations := byBed[b.ID]

		if window != nil {
			for _, a := range allocations {
				if a.BlocksBed() && a.Range().Overlaps(*window) {
					view.ConflictingBookings = append(view.ConflictingBookings, models.FromDomainAllocationRef(a))
				}
			}
			view.IsAvailable = len(view.ConflictingBookings) == 0
		}

		for _, a := range allocations {
			view.DayBookings = append(view.DayBookings, models.FromDomainAllocationRef(a))
		}

		resp.Beds = append(resp.Beds, view)
	}

	s.logger.Info("GetBedsWithAvailability: built schedule for %d beds, date=%s, window=%v",
		len(resp.Beds), date.Format(domain.DateFormat), window != nil)

	return resp, nil
}

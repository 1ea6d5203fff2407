package create_allocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SPA-BedService/internal/domain"
	bedstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
	catalogstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/catalog"
)

// UseCase use case создания аллокации кровати
type UseCase struct {
	bedRepo      BedRepository
	allocRepo    AllocationRepository
	catalogRepo  CatalogRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bedRepo BedRepository,
	allocRepo AllocationRepository,
	catalogRepo CatalogRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bedRepo:      bedRepo,
		allocRepo:    allocRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания аллокации
//
// Проверка конфликта и вставка идут в одной сериализуемой транзакции
// с FOR UPDATE: это закрывает гонку двух одновременных броней на одну
// кровать в пересекающиеся окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	uc.logger.Info("CreateAllocation: customer=%d, bed=%d, package=%d, start=%s",
		req.CustomerID, req.BedID, req.PackageID, req.StartTime.Format(time.RFC3339))

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAllocation: validation failed: %v", err)
		return nil, err
	}

	bed, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		if errors.Is(err, bedstorage.ErrBedNotFound) {
			uc.logger.Warn("CreateAllocation: bed id=%d not found", req.BedID)
			return nil, fmt.Errorf("%w: id %d", ErrBedNotFound, req.BedID)
		}
		uc.logger.Error("CreateAllocation: failed to get bed id=%d: %v", req.BedID, err)
		return nil, fmt.Errorf("%w: failed to get bed: %v", ErrInternal, err)
	}
	if bed.InMaintenance() {
		uc.logger.Warn("CreateAllocation: bed id=%d is in maintenance", req.BedID)
		return nil, fmt.Errorf("%w: id %d", ErrBedInMaintenance, req.BedID)
	}

	if _, err := uc.catalogRepo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, catalogstorage.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, req.CustomerID)
		}
		uc.logger.Error("CreateAllocation: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	pkg, err := uc.catalogRepo.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogstorage.ErrPackageNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPackageNotFound, req.PackageID)
		}
		uc.logger.Error("CreateAllocation: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	rng := domain.TimeRange{
		Start: req.StartTime,
		End:   req.StartTime.Add(time.Duration(pkg.DurationMinutes) * time.Minute),
	}
	if err := validateBusinessHours(rng); err != nil {
		uc.logger.Warn("CreateAllocation: business hours validation failed: %v", err)
		return nil, err
	}

	allocation := &domain.BedAllocation{
		BookingNumber: generateBookingNumber(),
		CustomerID:    req.CustomerID,
		BedID:         req.BedID,
		PackageID:     req.PackageID,
		StartTime:     rng.Start,
		EndTime:       rng.End,
		Status:        domain.AllocationStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPending,
		Notes:         req.Notes,
	}

	var created *domain.BedAllocation
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		hasOverlap, err := uc.allocRepo.HasOverlap(ctx, req.BedID, rng, nil)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if hasOverlap {
			return ErrTimeConflict
		}

		created, err = uc.allocRepo.Create(ctx, allocation)
		if err != nil {
			return fmt.Errorf("create allocation: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTimeConflict) {
			uc.logger.Warn("CreateAllocation: time conflict for bed id=%d, %s-%s",
				req.BedID, rng.Start.Format(time.RFC3339), rng.End.Format(time.RFC3339))
			return nil, ErrTimeConflict
		}
		uc.logger.Error("CreateAllocation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAllocation: created allocation id=%d booking=%s",
		created.ID, created.BookingNumber)
	return fromDomainAllocation(created), nil
}

// generateBookingNumber формирует номер брони вида SPA-1A2B3C4D
func generateBookingNumber() string {
	id := uuid.New().String()
	return "SPA-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

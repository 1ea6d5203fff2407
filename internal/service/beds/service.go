package beds

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-BedService/internal/domain"
	bedstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
	"github.com/m04kA/SPA-BedService/internal/service/beds/models"
)

// Service сервис управления кроватями
type Service struct {
	bedRepo BedRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса управления кроватями
func NewService(bedRepo BedRepository, logger Logger) *Service {
	return &Service{
		bedRepo: bedRepo,
		logger:  logger,
	}
}

// CreateBed создает новую кровать. Новая кровать всегда стартует
// в статусе available, дальше её подхватывает пересчет статусов
func (s *Service) CreateBed(ctx context.Context, req *models.CreateBedRequest) (*models.BedResponse, error) {
	b := &domain.Bed{
		BedNumber:   req.BedNumber,
		DisplayName: req.DisplayName,
		GridRow:     req.GridRow,
		GridCol:     req.GridCol,
		BedType:     domain.DefaultBedType,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
		Status:      domain.BedStatusAvailable,
	}
	if req.BedType != nil && *req.BedType != "" {
		b.BedType = *req.BedType
	}

	created, err := s.bedRepo.Create(ctx, b)
	if err != nil {
		if errors.Is(err, bedstorage.ErrDuplicateBedNumber) {
			s.logger.Warn("CreateBed: bed number %s already exists", req.BedNumber)
			return nil, fmt.Errorf("%w: CreateBed - number %s", ErrDuplicateBedNumber, req.BedNumber)
		}
		s.logger.Error("CreateBed: failed to create bed: %v", err)
		return nil, fmt.Errorf("%w: CreateBed - create: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBed: created bed id=%d number=%s", created.ID, created.BedNumber)
	return models.FromDomainBed(created), nil
}

// ListBeds возвращает все кровати в порядке сетки, включая maintenance
func (s *Service) ListBeds(ctx context.Context) (*models.BedListResponse, error) {
	list, err := s.bedRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBeds: failed to list beds: %v", err)
		return nil, fmt.Errorf("%w: ListBeds - list: %v", ErrInternal, err)
	}

	resp := &models.BedListResponse{Beds: make([]models.BedResponse, 0, len(list))}
	for _, b := range list {
		resp.Beds = append(resp.Beds, *models.FromDomainBed(b))
	}
	return resp, nil
}

// GetBed возвращает кровать по id
func (s *Service) GetBed(ctx context.Context, id int64) (*models.BedResponse, error) {
	b, err := s.bedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bedstorage.ErrBedNotFound) {
			return nil, fmt.Errorf("%w: GetBed - id %d", ErrBedNotFound, id)
		}
		s.logger.Error("GetBed: failed to get bed %d: %v", id, err)
		return nil, fmt.Errorf("%w: GetBed - get: %v", ErrInternal, err)
	}
	return models.FromDomainBed(b), nil
}

// UpdateBed частично обновляет кровать. Ручное выставление статуса
// разрешено: это единственный способ ввести и вывести maintenance
func (s *Service) UpdateBed(ctx context.Context, id int64, req *models.UpdateBedRequest) (*models.BedResponse, error) {
	b, err := s.bedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bedstorage.ErrBedNotFound) {
			return nil, fmt.Errorf("%w: UpdateBed - id %d", ErrBedNotFound, id)
		}
		s.logger.Error("UpdateBed: failed to get bed %d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBed - get: %v", ErrInternal, err)
	}

	applyBedUpdate(b, req)

	if req.Status != nil {
		status := domain.BedStatus(*req.Status)
		switch status {
		case domain.BedStatusAvailable, domain.BedStatusOccupied,
			domain.BedStatusMaintenance, domain.BedStatusBookedSoon:
			b.Status = status
		default:
			return nil, fmt.Errorf("%w: UpdateBed - status %q", ErrInvalidStatus, *req.Status)
		}
	}

	if err := s.bedRepo.Update(ctx, b); err != nil {
		s.logger.Error("UpdateBed: failed to update bed %d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBed - update: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBed: updated bed id=%d status=%s", b.ID, b.Status)
	return models.FromDomainBed(b), nil
}

// DeleteBed удаляет кровать
func (s *Service) DeleteBed(ctx context.Context, id int64) error {
	if err := s.bedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bedstorage.ErrBedNotFound) {
			return fmt.Errorf("%w: DeleteBed - id %d", ErrBedNotFound, id)
		}
		s.logger.Error("DeleteBed: failed to delete bed %d: %v", id, err)
		return fmt.Errorf("%w: DeleteBed - delete: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteBed: deleted bed id=%d", id)
	return nil
}

func applyBedUpdate(b *domain.Bed, req *models.UpdateBedRequest) {
	if req.DisplayName != nil {
		b.DisplayName = req.DisplayName
	}
	if req.GridRow != nil {
		b.GridRow = *req.GridRow
	}
	if req.GridCol != nil {
		b.GridCol = *req.GridCol
	}
	if req.BedType != nil {
		b.BedType = *req.BedType
	}
	if req.HourlyRate != nil {
		b.HourlyRate = req.HourlyRate
	}
	if req.Description != nil {
		b.Description = req.Description
	}
}

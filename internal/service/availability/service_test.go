package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BedService/internal/domain"
	bedstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockBedRepo struct {
	beds map[int64]*domain.Bed
	list []*domain.Bed
}

func (m *mockBedRepo) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	b, ok := m.beds[id]
	if !ok {
		return nil, bedstorage.ErrBedNotFound
	}
	return b, nil
}

func (m *mockBedRepo) ListBookable(ctx context.Context) ([]*domain.Bed, error) {
	return m.list, nil
}

// mockAllocRepo хранит аллокации в памяти и повторяет интервальную
// логику репозитория
type mockAllocRepo struct {
	allocations []*domain.BedAllocation
}

func (m *mockAllocRepo) HasOverlap(ctx context.Context, bedID int64, rng domain.TimeRange, excludeID *int64) (bool, error) {
	for _, a := range m.allocations {
		if a.BedID != bedID || !a.BlocksBed() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.Range().Overlaps(rng) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAllocRepo) ConflictingBedIDs(ctx context.Context, rng domain.TimeRange) ([]int64, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, a := range m.allocations {
		if !a.BlocksBed() || !a.Range().Overlaps(rng) {
			continue
		}
		if _, ok := seen[a.BedID]; ok {
			continue
		}
		seen[a.BedID] = struct{}{}
		ids = append(ids, a.BedID)
	}
	return ids, nil
}

func (m *mockAllocRepo) ListForDate(ctx context.Context, date time.Time, bedID *int64) ([]*domain.BedAllocation, error) {
	var out []*domain.BedAllocation
	for _, a := range m.allocations {
		if bedID != nil && a.BedID != *bedID {
			continue
		}
		if a.IsCancelled() {
			continue
		}
		if a.StartTime.Year() == date.Year() && a.StartTime.YearDay() == date.YearDay() {
			out = append(out, a)
		}
	}
	return out, nil
}

var baseDay = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func window(startHour, endHour int) domain.TimeRange {
	return domain.TimeRange{
		Start: baseDay.Add(time.Duration(startHour) * time.Hour),
		End:   baseDay.Add(time.Duration(endHour) * time.Hour),
	}
}

func booking(id, bedID int64, status domain.AllocationStatus, startHour, endHour int) *domain.BedAllocation {
	return &domain.BedAllocation{
		ID:        id,
		BedID:     bedID,
		StartTime: baseDay.Add(time.Duration(startHour) * time.Hour),
		EndTime:   baseDay.Add(time.Duration(endHour) * time.Hour),
		Status:    status,
	}
}

func TestIsBedAvailable_ConflictBoundaries(t *testing.T) {
	bedRepo := &mockBedRepo{beds: map[int64]*domain.Bed{
		1: {ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		booking(10, 1, domain.AllocationStatusConfirmed, 10, 12),
	}}
	svc := NewService(bedRepo, allocRepo, nopLogger{})
	ctx := context.Background()

	// Пересечение отклоняется
	available, err := svc.IsBedAvailable(ctx, 1, window(11, 13), nil)
	require.NoError(t, err)
	assert.False(t, available)

	// Граничащие интервалы не конфликтуют: конец существующей = начало новой
	available, err = svc.IsBedAvailable(ctx, 1, window(12, 14), nil)
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.IsBedAvailable(ctx, 1, window(8, 10), nil)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsBedAvailable_CancelledDoesNotBlock(t *testing.T) {
	bedRepo := &mockBedRepo{beds: map[int64]*domain.Bed{
		1: {ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		booking(10, 1, domain.AllocationStatusCancelled, 10, 12),
	}}
	svc := NewService(bedRepo, allocRepo, nopLogger{})

	available, err := svc.IsBedAvailable(context.Background(), 1, window(10, 12), nil)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsBedAvailable_ExcludeAllocation(t *testing.T) {
	bedRepo := &mockBedRepo{beds: map[int64]*domain.Bed{
		1: {ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		booking(10, 1, domain.AllocationStatusConfirmed, 10, 12),
	}}
	svc := NewService(bedRepo, allocRepo, nopLogger{})

	excludeID := int64(10)
	available, err := svc.IsBedAvailable(context.Background(), 1, window(10, 12), &excludeID)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsBedAvailable_UnknownAndMaintenance(t *testing.T) {
	bedRepo := &mockBedRepo{beds: map[int64]*domain.Bed{
		2: {ID: 2, BedNumber: "2", Status: domain.BedStatusMaintenance},
	}}
	svc := NewService(bedRepo, &mockAllocRepo{}, nopLogger{})
	ctx := context.Background()

	// Несуществующая кровать недоступна, но это не ошибка
	available, err := svc.IsBedAvailable(ctx, 99, window(10, 12), nil)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsBedAvailable(ctx, 2, window(10, 12), nil)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsBedAvailable_InvalidRange(t *testing.T) {
	svc := NewService(&mockBedRepo{}, &mockAllocRepo{}, nopLogger{})

	_, err := svc.IsBedAvailable(context.Background(), 1, window(12, 10), nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestGetAvailableBeds_SetDifference(t *testing.T) {
	bedRepo := &mockBedRepo{list: []*domain.Bed{
		{ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
		{ID: 2, BedNumber: "2", Status: domain.BedStatusAvailable},
		{ID: 3, BedNumber: "3", Status: domain.BedStatusAvailable},
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		booking(10, 2, domain.AllocationStatusConfirmed, 10, 12),
		booking(11, 3, domain.AllocationStatusCancelled, 10, 12),
	}}
	svc := NewService(bedRepo, allocRepo, nopLogger{})

	resp, err := svc.GetAvailableBeds(context.Background(), window(11, 13))
	require.NoError(t, err)
	require.Len(t, resp.Beds, 2)

	assert.Equal(t, int64(1), resp.Beds[0].ID)
	assert.Equal(t, int64(3), resp.Beds[1].ID)
}

func TestGetBedsWithAvailability_WindowConflicts(t *testing.T) {
	bedRepo := &mockBedRepo{list: []*domain.Bed{
		{ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
		{ID: 2, BedNumber: "2", Status: domain.BedStatusOccupied},
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		booking(10, 2, domain.AllocationStatusConfirmed, 10, 12),
		booking(11, 2, domain.AllocationStatusConfirmed, 14, 15),
	}}
	svc := NewService(bedRepo, allocRepo, nopLogger{})

	win := window(11, 13)
	resp, err := svc.GetBedsWithAvailability(context.Background(), baseDay, &win)
	require.NoError(t, err)
	require.Len(t, resp.Beds, 2)

	assert.True(t, resp.Beds[0].IsAvailable)
	assert.Empty(t, resp.Beds[0].ConflictingBookings)

	assert.False(t, resp.Beds[1].IsAvailable)
	require.Len(t, resp.Beds[1].ConflictingBookings, 1)
	// Дневной список содержит все брони кровати, не только конфликтующие
	assert.Len(t, resp.Beds[1].DayBookings, 2)
}

func TestGetBedsWithAvailability_NoWindow(t *testing.T) {
	bedRepo := &mockBedRepo{list: []*domain.Bed{
		{ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		booking(10, 1, domain.AllocationStatusConfirmed, 10, 12),
	}}
	svc := NewService(bedRepo, allocRepo, nopLogger{})

	resp, err := svc.GetBedsWithAvailability(context.Background(), baseDay, nil)
	require.NoError(t, err)
	require.Len(t, resp.Beds, 1)

	// Без окна доступность не размечается, брони дня всё равно приходят
	assert.True(t, resp.Beds[0].IsAvailable)
	assert.Len(t, resp.Beds[0].DayBookings, 1)
}

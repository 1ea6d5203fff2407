package get_day_schedule

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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type mockBedRepo struct {
	beds map[int64]*domain.Bed
}

func (m *mockBedRepo) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	b, ok := m.beds[id]
	if !ok {
		return nil, bedstorage.ErrBedNotFound
	}
	return b, nil
}

type mockAllocRepo struct {
	allocations []*domain.BedAllocation
}

func (m *mockAllocRepo) ListForDate(ctx context.Context, date time.Time, bedID *int64) ([]*domain.BedAllocation, error) {
	return m.allocations, nil
}

var day = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func newTestUseCase(allocations []*domain.BedAllocation, now time.Time) *UseCase {
	bedRepo := &mockBedRepo{beds: map[int64]*domain.Bed{
		1: {ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
	}}
	uc := NewUseCase(bedRepo, &mockAllocRepo{allocations: allocations}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecute_FullDayPartition(t *testing.T) {
	// До открытия: ни один слот не прошёл
	uc := newTestUseCase(nil, day.Add(6*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{BedID: 1, Date: day})
	require.NoError(t, err)

	// 08:00-22:00 с шагом 30 минут = 28 слотов
	require.Len(t, resp.Slots, 28)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
	assert.Equal(t, "08:30", resp.Slots[0].EndTime)
	assert.Equal(t, "21:30", resp.Slots[27].StartTime)
	assert.Equal(t, "22:00", resp.Slots[27].EndTime)

	// Сетка без дыр: конец слота равен началу следующего
	for i := 1; i < len(resp.Slots); i++ {
		assert.Equal(t, resp.Slots[i-1].EndTime, resp.Slots[i].StartTime)
	}

	for _, slot := range resp.Slots {
		assert.False(t, slot.IsPast)
		assert.True(t, slot.IsAvailable)
		assert.Nil(t, slot.Allocation)
	}
}

func TestExecute_PastSlots(t *testing.T) {
	// 12:15 - слоты с началом до этого момента прошли
	uc := newTestUseCase(nil, day.Add(12*time.Hour+15*time.Minute))

	resp, err := uc.Execute(context.Background(), &Request{BedID: 1, Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 28)

	// 08:00..12:00 - 9 прошедших слотов, начиная с 12:30 - будущие
	for i, slot := range resp.Slots {
		if i <= 8 {
			assert.True(t, slot.IsPast, "slot %s", slot.StartTime)
			assert.False(t, slot.IsAvailable, "slot %s", slot.StartTime)
		} else {
			assert.False(t, slot.IsPast, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_SlotStartingNow(t *testing.T) {
	// Ровно 12:00 - слот 12:00 ещё не прошёл и доступен
	uc := newTestUseCase(nil, day.Add(12*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{BedID: 1, Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 28)

	noon := resp.Slots[8]
	require.Equal(t, "12:00", noon.StartTime)
	assert.False(t, noon.IsPast)
	assert.True(t, noon.IsAvailable)

	// Предыдущий слот при этом уже прошёл
	assert.True(t, resp.Slots[7].IsPast)
	assert.False(t, resp.Slots[7].IsAvailable)
}

func TestExecute_OccupyingAllocation(t *testing.T) {
	alloc := &domain.BedAllocation{
		ID:            5,
		BedID:         1,
		BookingNumber: "SPA-ABCD1234",
		StartTime:     day.Add(10 * time.Hour),
		EndTime:       day.Add(11 * time.Hour),
		Status:        domain.AllocationStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
		Customer:      &domain.Customer{ID: 1, Name: "Anna"},
	}
	uc := newTestUseCase([]*domain.BedAllocation{alloc}, day.Add(6*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{BedID: 1, Date: day})
	require.NoError(t, err)

	// Слоты 10:00 и 10:30 заняты этой бронью
	for _, slot := range resp.Slots {
		switch slot.StartTime {
		case "10:00", "10:30":
			assert.False(t, slot.IsAvailable, "slot %s", slot.StartTime)
			require.NotNil(t, slot.Allocation, "slot %s", slot.StartTime)
			assert.Equal(t, "SPA-ABCD1234", slot.Allocation.BookingNumber)
			assert.Equal(t, "Anna", slot.Allocation.CustomerName)
		default:
			assert.True(t, slot.IsAvailable, "slot %s", slot.StartTime)
			assert.Nil(t, slot.Allocation, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_CancelledIgnored(t *testing.T) {
	alloc := &domain.BedAllocation{
		ID:        5,
		BedID:     1,
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
		Status:    domain.AllocationStatusCancelled,
	}
	uc := newTestUseCase([]*domain.BedAllocation{alloc}, day.Add(6*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{BedID: 1, Date: day})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
		assert.Nil(t, slot.Allocation)
	}
}

func TestExecute_UnknownBed(t *testing.T) {
	uc := newTestUseCase(nil, day.Add(6*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{BedID: 42, Date: day})
	require.NoError(t, err)

	// Несуществующая кровать - пустое расписание, не ошибка
	assert.Equal(t, int64(42), resp.BedID)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(nil, day)

	_, err := uc.Execute(context.Background(), &Request{BedID: 0, Date: day})
	assert.ErrorIs(t, err, ErrInvalidBedID)

	_, err = uc.Execute(context.Background(), &Request{BedID: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

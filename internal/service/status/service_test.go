package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type mockBedRepo struct {
	beds []*domain.Bed

	statusUpdates map[domain.BedStatus][]int64
	excludedIDs   []int64
	excludeStatus domain.BedStatus
}

func (m *mockBedRepo) List(ctx context.Context) ([]*domain.Bed, error) {
	return m.beds, nil
}

func (m *mockBedRepo) UpdateStatusForIDs(ctx context.Context, ids []int64, status domain.BedStatus) error {
	if m.statusUpdates == nil {
		m.statusUpdates = make(map[domain.BedStatus][]int64)
	}
	m.statusUpdates[status] = append([]int64{}, ids...)
	return nil
}

func (m *mockBedRepo) SetStatusExcluding(ctx context.Context, ids []int64, status domain.BedStatus) error {
	m.excludedIDs = append([]int64{}, ids...)
	m.excludeStatus = status
	return nil
}

type mockAllocRepo struct {
	allocations []*domain.BedAllocation
	occupied    []int64
	upcoming    []int64
}

func (m *mockAllocRepo) ListCurrentAndUpcoming(ctx context.Context, now, horizon time.Time) ([]*domain.BedAllocation, error) {
	return m.allocations, nil
}

func (m *mockAllocRepo) OccupiedBedIDs(ctx context.Context, now time.Time) ([]int64, error) {
	return m.occupied, nil
}

func (m *mockAllocRepo) UpcomingBedIDs(ctx context.Context, now, horizon time.Time) ([]int64, error) {
	return m.upcoming, nil
}

func newStatusService(bedRepo *mockBedRepo, allocRepo *mockAllocRepo, now time.Time) *Service {
	s := NewService(bedRepo, allocRepo, nopLogger{})
	s.timeProvider = fixedTime{t: now}
	return s
}

func bed(id int64, status domain.BedStatus) *domain.Bed {
	return &domain.Bed{ID: id, BedNumber: "1", GridRow: 1, GridCol: 1, BedType: "standard", Status: status}
}

func alloc(bedID int64, status domain.AllocationStatus, payment domain.PaymentStatus, start, end time.Time) *domain.BedAllocation {
	return &domain.BedAllocation{
		ID:            bedID * 100,
		BedID:         bedID,
		BookingNumber: "SPA-TEST",
		StartTime:     start,
		EndTime:       end,
		Status:        status,
		PaymentStatus: payment,
	}
}

func TestGetAllBedsWithStatus_MaintenanceDominates(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Даже оплаченная активная аллокация не перекрывает maintenance
	bedRepo := &mockBedRepo{beds: []*domain.Bed{bed(1, domain.BedStatusMaintenance)}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		alloc(1, domain.AllocationStatusInProgress, domain.PaymentStatusPaid, now.Add(-time.Hour), now.Add(time.Hour)),
	}}

	resp, err := newStatusService(bedRepo, allocRepo, now).GetAllBedsWithStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Beds, 1)

	assert.Equal(t, string(domain.BedStatusMaintenance), resp.Beds[0].Status)
	assert.Nil(t, resp.Beds[0].CurrentAllocation)
}

func TestGetAllBedsWithStatus_OccupiedRequiresPaid(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	bedRepo := &mockBedRepo{beds: []*domain.Bed{
		bed(1, domain.BedStatusAvailable),
		bed(2, domain.BedStatusAvailable),
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		alloc(1, domain.AllocationStatusConfirmed, domain.PaymentStatusPaid, now.Add(-time.Hour), now.Add(time.Hour)),
		alloc(2, domain.AllocationStatusConfirmed, domain.PaymentStatusPending, now.Add(-time.Hour), now.Add(time.Hour)),
	}}

	resp, err := newStatusService(bedRepo, allocRepo, now).GetAllBedsWithStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Beds, 2)

	assert.Equal(t, string(domain.BedStatusOccupied), resp.Beds[0].Status)
	require.NotNil(t, resp.Beds[0].CurrentAllocation)
	assert.Equal(t, "SPA-TEST", resp.Beds[0].CurrentAllocation.BookingNumber)

	// Неоплаченная текущая бронь кровать не занимает
	assert.Equal(t, string(domain.BedStatusAvailable), resp.Beds[1].Status)
	assert.Nil(t, resp.Beds[1].CurrentAllocation)
}

func TestGetAllBedsWithStatus_LockWindowBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	bedRepo := &mockBedRepo{beds: []*domain.Bed{
		bed(1, domain.BedStatusAvailable),
		bed(2, domain.BedStatusAvailable),
	}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		// Ровно на границе окна: входит
		alloc(1, domain.AllocationStatusConfirmed, domain.PaymentStatusPending,
			now.Add(domain.LockWindow), now.Add(domain.LockWindow+time.Hour)),
		// Секундой позже: ещё не подмораживает
		alloc(2, domain.AllocationStatusConfirmed, domain.PaymentStatusPending,
			now.Add(domain.LockWindow+time.Second), now.Add(domain.LockWindow+time.Hour)),
	}}

	resp, err := newStatusService(bedRepo, allocRepo, now).GetAllBedsWithStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Beds, 2)

	assert.Equal(t, string(domain.BedStatusBookedSoon), resp.Beds[0].Status)
	require.NotNil(t, resp.Beds[0].CurrentAllocation)
	assert.Equal(t, string(domain.BedStatusAvailable), resp.Beds[1].Status)
}

func TestGetAllBedsWithStatus_OccupiedWinsOverBookedSoon(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	bedRepo := &mockBedRepo{beds: []*domain.Bed{bed(1, domain.BedStatusAvailable)}}
	allocRepo := &mockAllocRepo{allocations: []*domain.BedAllocation{
		alloc(1, domain.AllocationStatusInProgress, domain.PaymentStatusPaid, now.Add(-time.Hour), now.Add(5*time.Minute)),
		alloc(1, domain.AllocationStatusConfirmed, domain.PaymentStatusPending, now.Add(10*time.Minute), now.Add(time.Hour)),
	}}

	resp, err := newStatusService(bedRepo, allocRepo, now).GetAllBedsWithStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Beds, 1)

	assert.Equal(t, string(domain.BedStatusOccupied), resp.Beds[0].Status)
	require.NotNil(t, resp.Beds[0].CurrentAllocation)
	assert.Equal(t, string(domain.AllocationStatusInProgress), resp.Beds[0].CurrentAllocation.Status)
}

func TestReconcileBedStatuses_SetMath(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	bedRepo := &mockBedRepo{}
	allocRepo := &mockAllocRepo{
		occupied: []int64{1, 2},
		upcoming: []int64{2, 3},
	}

	err := newStatusService(bedRepo, allocRepo, now).ReconcileBedStatuses(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, bedRepo.statusUpdates[domain.BedStatusOccupied])
	// Занятая кровать с подступающей следующей бронью остаётся occupied
	assert.Equal(t, []int64{3}, bedRepo.statusUpdates[domain.BedStatusBookedSoon])
	assert.Equal(t, []int64{1, 2, 3}, bedRepo.excludedIDs)
	assert.Equal(t, domain.BedStatusAvailable, bedRepo.excludeStatus)
}

func TestReconcileBedStatuses_Empty(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	bedRepo := &mockBedRepo{}
	allocRepo := &mockAllocRepo{}

	err := newStatusService(bedRepo, allocRepo, now).ReconcileBedStatuses(context.Background(), now)
	require.NoError(t, err)

	// Без занятых и предстоящих все кровати возвращаются в available
	assert.Empty(t, bedRepo.excludedIDs)
	assert.Equal(t, domain.BedStatusAvailable, bedRepo.excludeStatus)
}

package create_allocation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BedService/internal/domain"
	bedstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
	catalogstorage "github.com/m04kA/SPA-BedService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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
	hasOverlap bool
	created    *domain.BedAllocation
}

func (m *mockAllocRepo) HasOverlap(ctx context.Context, bedID int64, rng domain.TimeRange, excludeID *int64) (bool, error) {
	return m.hasOverlap, nil
}

func (m *mockAllocRepo) Create(ctx context.Context, a *domain.BedAllocation) (*domain.BedAllocation, error) {
	created := *a
	created.ID = 42
	m.created = &created
	return &created, nil
}

type mockCatalogRepo struct {
	customers map[int64]*domain.Customer
	packages  map[int64]*domain.Package
}

func (m *mockCatalogRepo) GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, catalogstorage.ErrCustomerNotFound
	}
	return c, nil
}

func (m *mockCatalogRepo) GetPackageByID(ctx context.Context, id int64) (*domain.Package, error) {
	p, ok := m.packages[id]
	if !ok {
		return nil, catalogstorage.ErrPackageNotFound
	}
	return p, nil
}

var now = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func newTestUseCase(allocRepo *mockAllocRepo) *UseCase {
	bedRepo := &mockBedRepo{beds: map[int64]*domain.Bed{
		1: {ID: 1, BedNumber: "1", Status: domain.BedStatusAvailable},
		2: {ID: 2, BedNumber: "2", Status: domain.BedStatusMaintenance},
	}}
	catalogRepo := &mockCatalogRepo{
		customers: map[int64]*domain.Customer{10: {ID: 10, Name: "Anna"}},
		packages:  map[int64]*domain.Package{20: {ID: 20, Name: "Basic Therapy - 30 min", DurationMinutes: 30, Price: 1500}},
	}
	uc := NewUseCase(bedRepo, allocRepo, catalogRepo, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID: 10,
		BedID:      1,
		PackageID:  20,
		StartTime:  now.Add(2 * time.Hour),
	}
}

func TestExecute_Success(t *testing.T) {
	allocRepo := &mockAllocRepo{}
	uc := newTestUseCase(allocRepo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.True(t, strings.HasPrefix(resp.BookingNumber, "SPA-"))
	assert.Equal(t, string(domain.AllocationStatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.PaymentStatus)

	// Конец сеанса вычисляется из длительности пакета
	assert.Equal(t, 30*time.Minute, resp.EndTime.Sub(resp.StartTime))
}

func TestExecute_TimeConflict(t *testing.T) {
	uc := newTestUseCase(&mockAllocRepo{hasOverlap: true})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_BedInMaintenance(t *testing.T) {
	uc := newTestUseCase(&mockAllocRepo{})

	req := validRequest()
	req.BedID = 2
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBedInMaintenance)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newTestUseCase(&mockAllocRepo{})

	req := validRequest()
	req.BedID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBedNotFound)

	req = validRequest()
	req.CustomerID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	req = validRequest()
	req.PackageID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockAllocRepo{})
	ctx := context.Background()

	req := validRequest()
	req.CustomerID = 0
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// Начало в прошлом
	req = validRequest()
	req.StartTime = now.Add(-time.Hour)
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// Сеанс выходит за рабочее окно: старт 21:45 + 30 минут > 22:00
	req = validRequest()
	req.StartTime = time.Date(2026, 8, 30, 21, 45, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// До открытия
	req = validRequest()
	req.StartTime = time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

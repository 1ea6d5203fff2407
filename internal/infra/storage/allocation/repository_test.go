package allocation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func allocationRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "booking_number", "customer_id", "bed_id", "package_id",
		"start_time", "end_time", "status", "payment_status", "notes",
		"created_at", "updated_at",
		"name", "phone", "email", "name", "duration_minutes", "price",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, "SPA-0000000A", int64(1), int64(1), int64(1),
			now, now.Add(30*time.Minute), "confirmed", "pending", nil,
			now, now,
			"Anna", nil, nil, "Basic Therapy - 30 min", 30, 1500.0)
	}
	return rows
}

func TestListOverdueUnpaid(t *testing.T) {
	repo, mock := newTestRepo(t)
	cutoff := time.Date(2026, 8, 30, 11, 45, 0, 0, time.UTC)

	// Кандидат на автоотмену: confirmed, начался до cutoff и отсутствует
	// квалифицирующий инвойс. Словарь статусов инвойсов совпадает со
	// CHECK-ограничениями таблицы invoices
	mock.ExpectQuery("SELECT (.+) FROM bed_allocations a (.+)NOT EXISTS(.+)FROM invoices i").
		WithArgs(
			string(domain.AllocationStatusConfirmed),
			cutoff,
			`{"draft","pending","completed"}`,
			string(domain.InvoicePaymentStatusUnpaid),
		).
		WillReturnRows(allocationRows(3))

	allocations, err := repo.ListOverdueUnpaid(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, int64(3), allocations[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOverdueUnpaid_Empty(t *testing.T) {
	repo, mock := newTestRepo(t)
	cutoff := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bed_allocations a").
		WillReturnRows(allocationRows())

	allocations, err := repo.ListOverdueUnpaid(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Empty(t, allocations)
}

func TestCancelWithNote(t *testing.T) {
	repo, mock := newTestRepo(t)

	// Существующие notes не перезаписываются, guard по confirmed делает
	// повторный вызов no-op
	mock.ExpectExec("UPDATE bed_allocations SET status = (.+), notes = CASE WHEN notes IS NULL OR notes = '' THEN (.+) ELSE notes (.+) END, updated_at = NOW\\(\\) WHERE id = (.+) AND status = (.+)").
		WithArgs(
			string(domain.AllocationStatusCancelled),
			domain.AutoCancelNote,
			domain.NotesSeparator,
			domain.AutoCancelNote,
			int64(9),
			string(domain.AllocationStatusConfirmed),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CancelWithNote(context.Background(), 9, domain.AutoCancelNote)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

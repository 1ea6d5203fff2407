package bed

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

func bedRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "bed_number", "display_name", "grid_row", "grid_col",
		"bed_type", "hourly_rate", "description", "status", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "1", "Table 1", 1, 1, "standard", 1500.0, nil,
			"available", time.Now(), time.Now())
	}
	return rows
}

func TestGetByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM beds WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(bedRows(7))

	b, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, domain.BedStatusAvailable, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM beds WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnRows(bedRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBedNotFound)
}

func TestList_IncludesMaintenanceOrderedByGrid(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM beds ORDER BY grid_row ASC, grid_col ASC").
		WillReturnRows(bedRows(1, 2))

	beds, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, beds, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookable_ExcludesMaintenance(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM beds WHERE status <> \\$1 ORDER BY grid_row ASC, grid_col ASC").
		WithArgs(string(domain.BedStatusMaintenance)).
		WillReturnRows(bedRows(1))

	beds, err := repo.ListBookable(context.Background())
	require.NoError(t, err)
	assert.Len(t, beds, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusForIDs_EmptyIsNoop(t *testing.T) {
	repo, mock := newTestRepo(t)

	// Ни одного запроса к базе
	err := repo.UpdateStatusForIDs(context.Background(), nil, domain.BedStatusOccupied)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusForIDs_SkipsMaintenance(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE beds SET status = \\$1, updated_at = NOW\\(\\) WHERE id IN \\(\\$2,\\$3\\) AND status <> \\$4").
		WithArgs(string(domain.BedStatusOccupied), int64(1), int64(2), string(domain.BedStatusMaintenance)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.UpdateStatusForIDs(context.Background(), []int64{1, 2}, domain.BedStatusOccupied)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusExcluding(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE beds SET status = \\$1, updated_at = NOW\\(\\) WHERE status <> \\$2 AND id NOT IN \\(\\$3\\)").
		WithArgs(string(domain.BedStatusAvailable), string(domain.BedStatusMaintenance), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.SetStatusExcluding(context.Background(), []int64{5}, domain.BedStatusAvailable)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

package bed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/pkg/dbmetrics"
	"github.com/m04kA/SPA-BedService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

var bedColumns = []string{
	"id",
	"bed_number",
	"display_name",
	"grid_row",
	"grid_col",
	"bed_type",
	"hourly_rate",
	"description",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с кроватями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кроватей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую кровать
func (r *Repository) Create(ctx context.Context, b *domain.Bed) (*domain.Bed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("beds").
		Columns(
			"bed_number",
			"display_name",
			"grid_row",
			"grid_col",
			"bed_type",
			"hourly_rate",
			"description",
			"status",
		).
		Values(
			b.BedNumber,
			b.DisplayName,
			b.GridRow,
			b.GridCol,
			b.BedType,
			b.HourlyRate,
			b.Description,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateBedNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает кровать по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bedColumns...).
		From("beds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBed(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan bed: %v", ErrScanRow, err)
	}

	return b, nil
}

// List получает все кровати в порядке расположения на сетке
// Включает кровати в maintenance - проекция статусов должна их видеть
func (r *Repository) List(ctx context.Context) ([]*domain.Bed, error) {
	return r.list(ctx, nil)
}

// ListBookable получает все кровати, доступные для бронирования
// (исключая maintenance), в порядке расположения на сетке
func (r *Repository) ListBookable(ctx context.Context) ([]*domain.Bed, error) {
	return r.list(ctx, squirrel.NotEq{"status": domain.BedStatusMaintenance})
}

func (r *Repository) list(ctx context.Context, where interface{}) ([]*domain.Bed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bedColumns...).
		From("beds").
		OrderBy("grid_row ASC, grid_col ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	beds := make([]*domain.Bed, 0)
	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		beds = append(beds, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return beds, nil
}

// Update обновляет атрибуты кровати
// Статус обновляется тоже - именно через этот метод кровать вручную
// переводится в maintenance и выводится из него
func (r *Repository) Update(ctx context.Context, b *domain.Bed) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("beds").
		Set("bed_number", b.BedNumber).
		Set("display_name", b.DisplayName).
		Set("grid_row", b.GridRow).
		Set("grid_col", b.GridCol).
		Set("bed_type", b.BedType).
		Set("hourly_rate", b.HourlyRate).
		Set("description", b.Description).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return ErrDuplicateBedNumber
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBedNotFound
	}

	return nil
}

// UpdateStatusForIDs массово выставляет статус кроватям из набора ids
// Кровати в maintenance не трогаются - этот статус снимается только вручную.
// Пустой набор - no-op
func (r *Repository) UpdateStatusForIDs(ctx context.Context, ids []int64, status domain.BedStatus) error {
	if len(ids) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("beds").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"status": domain.BedStatusMaintenance}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusForIDs - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateStatusForIDs - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// SetStatusExcluding массово выставляет статус всем кроватям КРОМЕ набора ids
// (и кроме maintenance). Используется веткой "available" пересчета статусов
func (r *Repository) SetStatusExcluding(ctx context.Context, ids []int64, status domain.BedStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("beds").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.NotEq{"status": domain.BedStatusMaintenance})

	if len(ids) > 0 {
		updateBuilder = updateBuilder.Where(squirrel.NotEq{"id": ids})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatusExcluding - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetStatusExcluding - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет кровать (физическое удаление, использовать осторожно)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("beds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBedNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBed(row rowScanner) (*domain.Bed, error) {
	var b domain.Bed
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.BedNumber,
		&b.DisplayName,
		&b.GridRow,
		&b.GridCol,
		&b.BedType,
		&b.HourlyRate,
		&b.Description,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

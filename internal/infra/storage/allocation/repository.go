package allocation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SPA-BedService/internal/domain"
	"github.com/m04kA/SPA-BedService/pkg/dbmetrics"
	"github.com/m04kA/SPA-BedService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

var allocationColumns = []string{
	"a.id",
	"a.booking_number",
	"a.customer_id",
	"a.bed_id",
	"a.package_id",
	"a.start_time",
	"a.end_time",
	"a.status",
	"a.payment_status",
	"a.notes",
	"a.created_at",
	"a.updated_at",
}

// detailColumns дополнительные колонки для загрузки с деталями клиента и пакета
var detailColumns = []string{
	"c.name",
	"c.phone",
	"c.email",
	"p.name",
	"p.duration_minutes",
	"p.price",
}

// Repository репозиторий для работы с аллокациями кроватей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аллокаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую аллокацию
// Если в контексте передана активная транзакция, использует её.
// Проверка конфликтов выполняется на уровне usecase в сериализуемой
// транзакции - сам Create дополнительных проверок не делает
func (r *Repository) Create(ctx context.Context, a *domain.BedAllocation) (*domain.BedAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bed_allocations").
		Columns(
			"booking_number",
			"customer_id",
			"bed_id",
			"package_id",
			"start_time",
			"end_time",
			"status",
			"payment_status",
			"notes",
		).
		Values(
			a.BookingNumber,
			a.CustomerID,
			a.BedID,
			a.PackageID,
			a.StartTime,
			a.EndTime,
			a.Status,
			a.PaymentStatus,
			a.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateBookingNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает аллокацию по ID с деталями клиента и пакета
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BedAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDetail().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	allocations, err := scanAllocations(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan allocation: %v", ErrScanRow, err)
	}
	if len(allocations) == 0 {
		return nil, ErrAllocationNotFound
	}

	return allocations[0], nil
}

// HasOverlap проверяет, есть ли у кровати неотменённая аллокация,
// пересекающаяся с полузакрытым интервалом rng.
// excludeID исключает аллокацию из проверки (при редактировании брони)
func (r *Repository) HasOverlap(ctx context.Context, bedID int64, rng domain.TimeRange, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("bed_allocations").
		Where(squirrel.Eq{"bed_id": bedID}).
		Where(squirrel.NotEq{"status": domain.AllocationStatusCancelled}).
		Where(squirrel.Lt{"start_time": rng.End}).
		Where(squirrel.Gt{"end_time": rng.Start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	// Если вызов идёт из сериализуемой транзакции создания брони,
	// блокируем конфликтующие строки
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: HasOverlap - rows error: %v", ErrScanRow, err)
	}

	return exists, nil
}

// ConflictingBedIDs возвращает id кроватей, у которых есть хотя бы одна
// неотменённая аллокация, пересекающаяся с интервалом rng.
// Один проход по аллокациям вместо проверки каждой кровати отдельно
func (r *Repository) ConflictingBedIDs(ctx context.Context, rng domain.TimeRange) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT bed_id").
		From("bed_allocations").
		Where(squirrel.NotEq{"status": domain.AllocationStatusCancelled}).
		Where(squirrel.Lt{"start_time": rng.End}).
		Where(squirrel.Gt{"end_time": rng.Start}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ConflictingBedIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBedIDs(ctx, executor, "ConflictingBedIDs", query, args)
}

// ListForDate получает неотменённые аллокации на дату (с деталями клиента и пакета)
// Если bedID задан - только для этой кровати. Сортировка по времени начала
func (r *Repository) ListForDate(ctx context.Context, date time.Time, bedID *int64) ([]*domain.BedAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := r.selectWithDetail().
		Where(squirrel.NotEq{"a.status": domain.AllocationStatusCancelled}).
		Where(squirrel.GtOrEq{"a.start_time": dayStart}).
		Where(squirrel.Lt{"a.start_time": dayEnd}).
		OrderBy("a.start_time ASC")

	if bedID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.bed_id": *bedID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	allocations, err := scanAllocations(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - scan rows: %v", ErrScanRow, err)
	}

	return allocations, nil
}

// ListCurrentAndUpcoming получает неотменённые аллокации, которые ещё не
// закончились к now и начинаются не позже horizon (с деталями).
// Один запрос покрывает обе ветки проекции статусов: текущие и предстоящие
func (r *Repository) ListCurrentAndUpcoming(ctx context.Context, now, horizon time.Time) ([]*domain.BedAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDetail().
		Where(squirrel.NotEq{"a.status": domain.AllocationStatusCancelled}).
		Where(squirrel.Gt{"a.end_time": now}).
		Where(squirrel.LtOrEq{"a.start_time": horizon}).
		OrderBy("a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCurrentAndUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCurrentAndUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	allocations, err := scanAllocations(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCurrentAndUpcoming - scan rows: %v", ErrScanRow, err)
	}

	return allocations, nil
}

// OccupiedBedIDs возвращает id кроватей, занятых в момент now:
// оплаченная confirmed/in_progress аллокация, чьё окно покрывает now
func (r *Repository) OccupiedBedIDs(ctx context.Context, now time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT bed_id").
		From("bed_allocations").
		Where(squirrel.Eq{"status": domain.OccupyingStatuses}).
		Where(squirrel.Eq{"payment_status": domain.PaymentStatusPaid}).
		Where(squirrel.LtOrEq{"start_time": now}).
		Where(squirrel.Gt{"end_time": now}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedBedIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBedIDs(ctx, executor, "OccupiedBedIDs", query, args)
}

// UpcomingBedIDs возвращает id кроватей с неотменённой аллокацией,
// начинающейся в окне (now, horizon].
// Оплата намеренно НЕ проверяется: любая активная бронь подмораживает стол
func (r *Repository) UpcomingBedIDs(ctx context.Context, now, horizon time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT bed_id").
		From("bed_allocations").
		Where(squirrel.NotEq{"status": domain.AllocationStatusCancelled}).
		Where(squirrel.Gt{"start_time": now}).
		Where(squirrel.LtOrEq{"start_time": horizon}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpcomingBedIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBedIDs(ctx, executor, "UpcomingBedIDs", query, args)
}

// CompleteElapsed переводит in_progress -> completed все аллокации,
// чьё end_time уже прошло. Возвращает число затронутых строк
func (r *Repository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bed_allocations").
		Set("status", domain.AllocationStatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.AllocationStatusInProgress}).
		Where(squirrel.Lt{"end_time": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompleteElapsed - build update query: %v", ErrBuildQuery, err)
	}

	return r.execCount(ctx, executor, "CompleteElapsed", query, args)
}

// StartDue переводит confirmed -> in_progress все аллокации,
// чьё окно покрывает now. Возвращает число затронутых строк
func (r *Repository) StartDue(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bed_allocations").
		Set("status", domain.AllocationStatusInProgress).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.AllocationStatusConfirmed}).
		Where(squirrel.LtOrEq{"start_time": now}).
		Where(squirrel.Gt{"end_time": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: StartDue - build update query: %v", ErrBuildQuery, err)
	}

	return r.execCount(ctx, executor, "StartDue", query, args)
}

// ListOverdueUnpaid получает confirmed аллокации, начавшиеся раньше cutoff,
// у которых нет квалифицирующего инвойса (draft/pending/completed с
// payment_status != unpaid). Кандидаты на автоотмену
func (r *Repository) ListOverdueUnpaid(ctx context.Context, cutoff time.Time) ([]*domain.BedAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDetail().
		Where(squirrel.Eq{"a.status": domain.AllocationStatusConfirmed}).
		Where(squirrel.Lt{"a.start_time": cutoff}).
		Where(squirrel.Expr(
			`NOT EXISTS (
				SELECT 1 FROM invoices i
				WHERE i.allocation_id = a.id
				  AND i.status = ANY(?)
				  AND i.payment_status != ?
			)`,
			pq.Array(invoiceStatusStrings(domain.QualifyingInvoiceStatuses)),
			domain.InvoicePaymentStatusUnpaid,
		)).
		OrderBy("a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverdueUnpaid - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverdueUnpaid - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	allocations, err := scanAllocations(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverdueUnpaid - scan rows: %v", ErrScanRow, err)
	}

	return allocations, nil
}

// CancelWithNote отменяет confirmed аллокацию, дописывая note к notes
// через разделитель. Существующие notes никогда не перезаписываются.
// Guard по статусу делает операцию идемпотентной: повторный вызов
// для уже отменённой аллокации - no-op
func (r *Repository) CancelWithNote(ctx context.Context, id int64, note string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bed_allocations").
		Set("status", domain.AllocationStatusCancelled).
		Set("notes", squirrel.Expr(
			"CASE WHEN notes IS NULL OR notes = '' THEN ?::text ELSE notes || ? || ? END",
			note, domain.NotesSeparator, note,
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.AllocationStatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelWithNote - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CancelWithNote - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Вспомогательные методы

func (r *Repository) selectWithDetail() squirrel.SelectBuilder {
	columns := append(append([]string{}, allocationColumns...), detailColumns...)
	return psqlbuilder.Select(columns...).
		From("bed_allocations a").
		LeftJoin("customers c ON c.id = a.customer_id").
		LeftJoin("packages p ON p.id = a.package_id")
}

func (r *Repository) queryBedIDs(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) ([]int64, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - scan bed_id: %v", ErrScanRow, method, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return ids, nil
}

func (r *Repository) execCount(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	return rowsAffected, nil
}

func scanAllocations(rows *sql.Rows) ([]*domain.BedAllocation, error) {
	allocations := make([]*domain.BedAllocation, 0)

	for rows.Next() {
		var a domain.BedAllocation
		var createdAt, updatedAt sql.NullTime
		var customerName, customerPhone, customerEmail sql.NullString
		var packageName sql.NullString
		var packageDuration sql.NullInt64
		var packagePrice sql.NullFloat64

		err := rows.Scan(
			&a.ID,
			&a.BookingNumber,
			&a.CustomerID,
			&a.BedID,
			&a.PackageID,
			&a.StartTime,
			&a.EndTime,
			&a.Status,
			&a.PaymentStatus,
			&a.Notes,
			&createdAt,
			&updatedAt,
			&customerName,
			&customerPhone,
			&customerEmail,
			&packageName,
			&packageDuration,
			&packagePrice,
		)
		if err != nil {
			return nil, err
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time

		if customerName.Valid {
			a.Customer = &domain.Customer{
				ID:   a.CustomerID,
				Name: customerName.String,
			}
			if customerPhone.Valid {
				a.Customer.Phone = &customerPhone.String
			}
			if customerEmail.Valid {
				a.Customer.Email = &customerEmail.String
			}
		}

		if packageName.Valid {
			a.Package = &domain.Package{
				ID:              a.PackageID,
				Name:            packageName.String,
				DurationMinutes: int(packageDuration.Int64),
				Price:           packagePrice.Float64,
			}
		}

		allocations = append(allocations, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return allocations, nil
}

func invoiceStatusStrings(statuses []domain.InvoiceStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

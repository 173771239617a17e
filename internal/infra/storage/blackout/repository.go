package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var blackoutColumns = []string{
	"id",
	"staff_id",
	"start_at",
	"end_at",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокировками (точечная недоступность
// сотрудника поверх недельного расписания)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку
func (r *Repository) Create(ctx context.Context, b *domain.Blackout) (*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blackouts").
		Columns("staff_id", "start_at", "end_at", "reason").
		Values(b.StaffID, b.StartAt, b.EndAt, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blackoutColumns...).
		From("blackouts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBlackout(executor.QueryRowContext(ctx, query, args...))
}

// ListByStaff возвращает все блокировки сотрудника, отсортированные по началу
func (r *Repository) ListByStaff(ctx context.Context, staffID int64) ([]*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blackoutColumns...).
		From("blackouts").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBlackouts(ctx, executor, query, args)
}

// ListOverlapping возвращает блокировки сотрудника, пересекающиеся с [from, to).
// Пересечение полуоткрытое: start_at < to AND end_at > from.
func (r *Repository) ListOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blackoutColumns...).
		From("blackouts").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBlackouts(ctx, executor, query, args)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blackouts").
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
		return ErrBlackoutNotFound
	}

	return nil
}

func (r *Repository) queryBlackouts(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}) ([]*domain.Blackout, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.Blackout, 0)

	for rows.Next() {
		b, err := r.scanBlackout(rows)
		if err != nil {
			return nil, err
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBlackout(row rowScanner) (*domain.Blackout, error) {
	var b domain.Blackout
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.StaffID,
		&b.StartAt,
		&b.EndAt,
		&b.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlackoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBlackout - scan row: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

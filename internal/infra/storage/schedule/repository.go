package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var scheduleColumns = []string{
	"staff_id",
	"weekday",
	"active",
	"start1",
	"end1",
	"start2",
	"end2",
}

// Repository репозиторий для работы с недельным расписанием сотрудников.
// Таблица weekly_schedule: составной PK (staff_id, weekday 1..7), до двух
// рабочих окон на день. Отсутствие строки = выходной.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDay получает расписание сотрудника на конкретный день недели (1..7)
func (r *Repository) GetDay(ctx context.Context, staffID int64, weekday int) (*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedule").
		Where(squirrel.Eq{"staff_id": staffID, "weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDay - build select query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDay(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return day, nil
}

// GetWeek получает все настроенные дни недели сотрудника (может быть меньше 7)
func (r *Repository) GetWeek(ctx context.Context, staffID int64) ([]*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedule").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.ScheduleDay, 0, domain.WeekdayMax)

	for rows.Next() {
		day, err := r.scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// UpsertDay создает или обновляет расписание сотрудника на день недели.
// Для неактивного дня окна затираются в NULL.
func (r *Repository) UpsertDay(ctx context.Context, day *domain.ScheduleDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_schedule").
		Columns(scheduleColumns...).
		Values(
			day.StaffID,
			day.Weekday,
			day.Active,
			day.Start1,
			day.End1,
			day.Start2,
			day.End2,
		).
		Suffix(`ON CONFLICT (staff_id, weekday) DO UPDATE SET
			active = EXCLUDED.active,
			start1 = EXCLUDED.start1,
			end1 = EXCLUDED.end1,
			start2 = EXCLUDED.start2,
			end2 = EXCLUDED.end2`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertDay - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertDay - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDay(row rowScanner) (*domain.ScheduleDay, error) {
	var day domain.ScheduleDay
	var start1, end1, start2, end2 sql.NullString

	err := row.Scan(
		&day.StaffID,
		&day.Weekday,
		&day.Active,
		&start1,
		&end1,
		&start2,
		&end2,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanDay - scan row: %v", ErrScanRow, err)
	}

	if day.Start1, err = toTimeString(start1); err != nil {
		return nil, fmt.Errorf("%w: scanDay - start1: %v", ErrScanRow, err)
	}
	if day.End1, err = toTimeString(end1); err != nil {
		return nil, fmt.Errorf("%w: scanDay - end1: %v", ErrScanRow, err)
	}
	if day.Start2, err = toTimeString(start2); err != nil {
		return nil, fmt.Errorf("%w: scanDay - start2: %v", ErrScanRow, err)
	}
	if day.End2, err = toTimeString(end2); err != nil {
		return nil, fmt.Errorf("%w: scanDay - end2: %v", ErrScanRow, err)
	}

	return &day, nil
}

// toTimeString конвертирует TIME колонку (приходит как "10:00:00") в *types.TimeString
func toTimeString(v sql.NullString) (*types.TimeString, error) {
	if !v.Valid {
		return nil, nil
	}

	var ts types.TimeString
	if err := ts.Scan(v.String); err != nil {
		return nil, err
	}
	return &ts, nil
}

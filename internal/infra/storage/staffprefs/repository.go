package staffprefs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий документа настроек сотрудника.
// Таблица staff_prefs: staff_id PK + свободный JSON документ. Парсинг и
// валидация содержимого - забота вызывающего (см. service/durations):
// репозиторий отдает сырой blob как есть.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRaw возвращает сырой JSON документ настроек сотрудника
func (r *Repository) GetRaw(ctx context.Context, staffID int64) ([]byte, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("prefs").
		From("staff_prefs").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRaw - build select query: %v", ErrBuildQuery, err)
	}

	var prefs []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&prefs)
	if err == sql.ErrNoRows {
		return nil, ErrPrefsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRaw - execute query: %v", ErrExecQuery, err)
	}

	return prefs, nil
}

// Upsert сохраняет документ настроек сотрудника целиком
func (r *Repository) Upsert(ctx context.Context, staffID int64, prefs []byte) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_prefs").
		Columns("staff_id", "prefs").
		Values(staffID, prefs).
		Suffix("ON CONFLICT (staff_id) DO UPDATE SET prefs = EXCLUDED.prefs").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

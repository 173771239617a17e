package protocol

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Код нарушения unique constraint в PostgreSQL
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с протоколами (аудит бронирований)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория протоколов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись протокола. Вызывается в одной транзакции с созданием
// записи на услугу - обе либо фиксируются вместе, либо откатываются.
func (r *Repository) Create(ctx context.Context, record *domain.ProtocolRecord) (*domain.ProtocolRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("protocols").
		Columns("code", "kind", "payload").
		Values(record.Code, record.Kind, []byte(record.Payload)).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: Create - code=%s", ErrDuplicateCode, record.Code)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// ExistsByCode проверяет существование протокола с данным кодом
func (r *Repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("protocols").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCode - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCode - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// GetByCode получает протокол по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.ProtocolRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "kind", "payload", "created_at").
		From("protocols").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.ProtocolRecord
	var payload []byte
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.Code,
		&record.Kind,
		&payload,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProtocolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan protocol: %v", ErrScanRow, err)
	}

	record.Payload = payload
	record.CreatedAt = createdAt.Time

	return &record, nil
}

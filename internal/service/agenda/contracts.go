package agenda

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetWeek(ctx context.Context, staffID int64) ([]*domain.ScheduleDay, error)
	UpsertDay(ctx context.Context, day *domain.ScheduleDay) error
}

// BlackoutRepository интерфейс репозитория блокировок
type BlackoutRepository interface {
	Create(ctx context.Context, b *domain.Blackout) (*domain.Blackout, error)
	GetByID(ctx context.Context, id int64) (*domain.Blackout, error)
	ListByStaff(ctx context.Context, staffID int64) ([]*domain.Blackout, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

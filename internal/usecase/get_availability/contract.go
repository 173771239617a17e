package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// IsServiceEnabled проверяет, что услуга включена для сотрудника
	IsServiceEnabled(ctx context.Context, staffID, serviceID int64) (bool, error)
}

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetDay(ctx context.Context, staffID int64, weekday int) (*domain.ScheduleDay, error)
}

// BlackoutRepository интерфейс репозитория блокировок
type BlackoutRepository interface {
	// ListOverlapping получает блокировки сотрудника, пересекающиеся с [from, to)
	ListOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Blackout, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListBlockingOverlapping получает записи в блокирующих статусах,
	// пересекающиеся с [from, to)
	ListBlockingOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// DurationResolver интерфейс резолвера эффективной длительности услуги
type DurationResolver interface {
	Resolve(ctx context.Context, staffID, serviceID int64, fallbackMinutes int) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

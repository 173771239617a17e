package create_appointment

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

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// ListBlockingOverlapping получает записи в блокирующих статусах,
	// пересекающиеся с [from, to). Внутри транзакции выполняется с FOR UPDATE.
	ListBlockingOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error)
	ExistsByProtocol(ctx context.Context, protocol string) (bool, error)
}

// ProtocolRepository интерфейс репозитория протоколов
type ProtocolRepository interface {
	Create(ctx context.Context, record *domain.ProtocolRecord) (*domain.ProtocolRecord, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// DurationResolver интерфейс резолвера эффективной длительности услуги
type DurationResolver interface {
	Resolve(ctx context.Context, staffID, serviceID int64, fallbackMinutes int) int
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в транзакции с уровнем изоляции SERIALIZABLE
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package durations

import "context"

// PrefsRepository интерфейс репозитория документа настроек сотрудника
type PrefsRepository interface {
	GetRaw(ctx context.Context, staffID int64) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

package list_blackouts

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
)

type AgendaService interface {
	ListBlackouts(ctx context.Context, callerID int64) ([]*models.BlackoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

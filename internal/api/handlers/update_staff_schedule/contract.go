package update_staff_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
)

type AgendaService interface {
	UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_staff_appointment

import (
	"context"

	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	ExecuteStaff(ctx context.Context, req *createAppointment.StaffRequest) (*createAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

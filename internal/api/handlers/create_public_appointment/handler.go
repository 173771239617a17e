package create_public_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidRequest     = "некорректные данные записи"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgServiceInactive    = "услуга недоступна"
	msgStaffNotBookable   = "к этому сотруднику нельзя записаться"
	msgServiceNotEnabled  = "сотрудник не оказывает эту услугу"
	msgSlotConflict       = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /public/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.ExecutePublic(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /public/appointments - Slot conflict: staff_id=%d, start=%s",
				req.StaffID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /public/appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /public/appointments - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /public/appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrStaffNotBookable):
			h.logger.Warn("POST /public/appointments - Staff not bookable: staff_id=%d", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotBookable)

		case errors.Is(err, createAppointment.ErrServiceNotEnabled):
			h.logger.Warn("POST /public/appointments - Service not enabled: service_id=%d, staff_id=%d",
				req.ServiceID, req.StaffID)
			handlers.RespondBadRequest(w, msgServiceNotEnabled)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /public/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /public/appointments - Failed to create appointment: service_id=%d, staff_id=%d, error=%v",
				req.ServiceID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /public/appointments - Appointment created successfully: id=%d, protocol=%s",
		result.ID, result.Protocol)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

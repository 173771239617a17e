package create_staff_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidRequest     = "некорректные данные записи"
	msgAccessDenied       = "операция доступна только активным сотрудникам"
	msgClientNotFound     = "клиент не найден"
	msgClientNotBookable  = "указанный пользователь не является активным клиентом"
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

// Handle POST /api/v1/staff/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /staff/appointments - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(callerID)
	if err != nil {
		h.logger.Warn("POST /staff/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.ExecuteStaff(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /staff/appointments - Slot conflict: caller_id=%d, staff_id=%d, start=%s",
				callerID, req.StaffID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrAccessDenied):
			h.logger.Warn("POST /staff/appointments - Access denied: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /staff/appointments - Client not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrClientNotBookable):
			h.logger.Warn("POST /staff/appointments - Client not bookable: caller_id=%d", callerID)
			handlers.RespondBadRequest(w, msgClientNotBookable)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /staff/appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /staff/appointments - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /staff/appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrStaffNotBookable):
			h.logger.Warn("POST /staff/appointments - Staff not bookable: staff_id=%d", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotBookable)

		case errors.Is(err, createAppointment.ErrServiceNotEnabled):
			h.logger.Warn("POST /staff/appointments - Service not enabled: service_id=%d, staff_id=%d",
				req.ServiceID, req.StaffID)
			handlers.RespondBadRequest(w, msgServiceNotEnabled)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /staff/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /staff/appointments - Failed to create appointment: caller_id=%d, error=%v",
				callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /staff/appointments - Appointment created successfully: id=%d, protocol=%s, caller_id=%d",
		result.ID, result.Protocol, callerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

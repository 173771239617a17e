package update_staff_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	agendaService "github.com/m04kA/SMC-SalonService/internal/service/agenda"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgIncompleteWeek     = "расписание должно содержать ровно 7 дней (1..7) без дубликатов"
	msgInvalidWindow      = "некорректные рабочие окна дня"
	msgStaffNotFound      = "сотрудник не найден"
	msgNotStaff           = "расписание доступно только активным сотрудникам"
)

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/me/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /staff/me/schedule - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdateWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/me/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(callerID)
	if err != nil {
		h.logger.Warn("PUT /staff/me/schedule - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.UpdateWeek(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrIncompleteWeek):
			h.logger.Warn("PUT /staff/me/schedule - Incomplete week: caller_id=%d, error=%v", callerID, err)
			handlers.RespondBadRequest(w, msgIncompleteWeek)

		case errors.Is(err, agendaService.ErrInvalidWindow):
			h.logger.Warn("PUT /staff/me/schedule - Invalid windows: caller_id=%d, error=%v", callerID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, agendaService.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/me/schedule - Staff not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, agendaService.ErrNotStaff):
			h.logger.Warn("PUT /staff/me/schedule - Not a staff member: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgNotStaff)

		default:
			h.logger.Error("PUT /staff/me/schedule - Failed to update schedule: caller_id=%d, error=%v",
				callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/me/schedule - Schedule updated successfully: caller_id=%d", callerID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

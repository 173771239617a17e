package get_staff_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	agendaService "github.com/m04kA/SMC-SalonService/internal/service/agenda"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgStaffNotFound = "сотрудник не найден"
	msgNotStaff      = "расписание доступно только активным сотрудникам"
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

// Handle GET /api/v1/staff/me/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/me/schedule - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.GetWeek(r.Context(), callerID)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/me/schedule - Staff not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, agendaService.ErrNotStaff):
			h.logger.Warn("GET /staff/me/schedule - Not a staff member: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgNotStaff)

		default:
			h.logger.Error("GET /staff/me/schedule - Failed to get schedule: caller_id=%d, error=%v",
				callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/me/schedule - Schedule retrieved successfully: caller_id=%d", callerID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

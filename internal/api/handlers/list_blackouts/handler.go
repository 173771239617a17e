package list_blackouts

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
	msgNotStaff      = "блокировки доступны только активным сотрудникам"
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

// Handle GET /api/v1/staff/me/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/me/blackouts - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.ListBlackouts(r.Context(), callerID)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/me/blackouts - Staff not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, agendaService.ErrNotStaff):
			h.logger.Warn("GET /staff/me/blackouts - Not a staff member: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgNotStaff)

		default:
			h.logger.Error("GET /staff/me/blackouts - Failed to list blackouts: caller_id=%d, error=%v",
				callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/me/blackouts - Blackouts retrieved successfully: caller_id=%d, count=%d",
		callerID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

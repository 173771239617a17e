package delete_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	agendaService "github.com/m04kA/SMC-SalonService/internal/service/agenda"
)

const (
	msgUnauthorized      = "требуется аутентификация"
	msgInvalidBlackoutID = "некорректный ID блокировки"
	msgBlackoutNotFound  = "блокировка не найдена"
	msgStaffNotFound     = "сотрудник не найден"
	msgNotStaff          = "блокировки доступны только активным сотрудникам"
	msgForeignBlackout   = "нельзя удалить чужую блокировку"
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

// Handle DELETE /api/v1/staff/me/blackouts/{blackoutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /staff/me/blackouts/{blackoutId} - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	blackoutID, err := strconv.ParseInt(vars["blackoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/me/blackouts/{blackoutId} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	if err := h.service.DeleteBlackout(r.Context(), callerID, blackoutID); err != nil {
		switch {
		case errors.Is(err, agendaService.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /staff/me/blackouts/{blackoutId} - Blackout not found: blackout_id=%d", blackoutID)
			handlers.RespondNotFound(w, msgBlackoutNotFound)

		case errors.Is(err, agendaService.ErrAccessDenied):
			h.logger.Warn("DELETE /staff/me/blackouts/{blackoutId} - Access denied: caller_id=%d, blackout_id=%d",
				callerID, blackoutID)
			handlers.RespondError(w, http.StatusForbidden, msgForeignBlackout)

		case errors.Is(err, agendaService.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff/me/blackouts/{blackoutId} - Staff not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, agendaService.ErrNotStaff):
			h.logger.Warn("DELETE /staff/me/blackouts/{blackoutId} - Not a staff member: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgNotStaff)

		default:
			h.logger.Error("DELETE /staff/me/blackouts/{blackoutId} - Failed to delete blackout: caller_id=%d, blackout_id=%d, error=%v",
				callerID, blackoutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/me/blackouts/{blackoutId} - Blackout deleted successfully: blackout_id=%d, caller_id=%d",
		blackoutID, callerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package create_blackout

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
	msgInvalidDateTime    = "некорректные дата/время, ожидается RFC3339"
	msgInvalidBlackout    = "некорректный интервал блокировки"
	msgStaffNotFound      = "сотрудник не найден"
	msgNotStaff           = "блокировки доступны только активным сотрудникам"
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

// Handle POST /api/v1/staff/me/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /staff/me/blackouts - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/me/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(callerID)
	if err != nil {
		h.logger.Warn("POST /staff/me/blackouts - Failed to parse datetimes: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.CreateBlackout(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrInvalidBlackout):
			h.logger.Warn("POST /staff/me/blackouts - Invalid blackout: caller_id=%d, error=%v", callerID, err)
			handlers.RespondBadRequest(w, msgInvalidBlackout)

		case errors.Is(err, agendaService.ErrStaffNotFound):
			h.logger.Warn("POST /staff/me/blackouts - Staff not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, agendaService.ErrNotStaff):
			h.logger.Warn("POST /staff/me/blackouts - Not a staff member: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgNotStaff)

		default:
			h.logger.Error("POST /staff/me/blackouts - Failed to create blackout: caller_id=%d, error=%v",
				callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/me/blackouts - Blackout created successfully: id=%d, caller_id=%d",
		result.ID, callerID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

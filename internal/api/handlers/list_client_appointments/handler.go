package list_client_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgInvalidFrom    = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo      = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidStatus  = "некорректный статус записи"
	msgCallerNotFound = "пользователь не найден"
	msgAccessDenied   = "история записей доступна только активным клиентам"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/appointments
// Query params: from (YYYY-MM-DD), to (YYYY-MM-DD), status (можно повторять)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /me/appointments - Missing caller identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	serviceReq := &models.ListRequest{
		CallerID: callerID,
		Statuses: query["status"],
	}

	// Окно [from, to) - обе границы опциональны
	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /me/appointments - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		serviceReq.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /me/appointments - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		serviceReq.To = &to
	}

	result, err := h.service.ListClientAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrCallerNotFound):
			h.logger.Warn("GET /me/appointments - Caller not found: caller_id=%d", callerID)
			handlers.RespondNotFound(w, msgCallerNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /me/appointments - Access denied: caller_id=%d", callerID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /me/appointments - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /me/appointments - Failed to list appointments: caller_id=%d, error=%v",
				callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/appointments - Appointments retrieved successfully: caller_id=%d, count=%d",
		callerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

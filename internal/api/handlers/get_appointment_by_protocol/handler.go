package get_appointment_by_protocol

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgMissingProtocol     = "код протокола обязателен"
	msgAppointmentNotFound = "запись не найдена"
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

// Handle GET /api/v1/appointments/protocol/{protocol}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	protocol := strings.TrimSpace(vars["protocol"])
	if protocol == "" {
		h.logger.Warn("GET /appointments/protocol/{protocol} - Missing protocol")
		handlers.RespondBadRequest(w, msgMissingProtocol)
		return
	}

	result, err := h.service.GetByProtocol(r.Context(), protocol)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/protocol/{protocol} - Appointment not found: protocol=%s", protocol)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/protocol/{protocol} - Failed to get appointment: protocol=%s, error=%v",
				protocol, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/protocol/{protocol} - Appointment retrieved successfully: protocol=%s", protocol)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

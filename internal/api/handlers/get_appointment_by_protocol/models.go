package get_appointment_by_protocol

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model.
// Публичный просмотр по коду протокола: контактные данные клиента не
// раскрываются.
type AppointmentResponse struct {
	Protocol   string  `json:"protocol"`
	ServiceID  int64   `json:"serviceId"`
	StaffID    int64   `json:"staffId"`
	ClientName string  `json:"clientName"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	Notes      *string `json:"notes,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		Protocol:   resp.Protocol,
		ServiceID:  resp.ServiceID,
		StaffID:    resp.StaffID,
		ClientName: resp.ClientName,
		Date:       resp.StartAt.Format(domain.DateFormat),
		StartTime:  resp.StartAt.Format(domain.TimeFormat),
		EndTime:    resp.EndAt.Format(domain.TimeFormat),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		Notes:      resp.Notes,
	}
}

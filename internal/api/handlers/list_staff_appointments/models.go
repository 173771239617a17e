package list_staff_appointments

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model.
// Календарь сотрудника: контактные данные клиента видны, чтобы сотрудник
// мог связаться с записавшимся.
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	Protocol    string  `json:"protocol"`
	ServiceID   int64   `json:"serviceId"`
	ClientID    *int64  `json:"clientId,omitempty"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail string  `json:"clientEmail,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ListResponse HTTP response model со списком записей
type ListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ListResponse) *ListResponse {
	result := &ListResponse{Appointments: make([]*AppointmentResponse, len(resp.Appointments))}
	for i, a := range resp.Appointments {
		result.Appointments[i] = &AppointmentResponse{
			ID:          a.ID,
			Protocol:    a.Protocol,
			ServiceID:   a.ServiceID,
			ClientID:    a.ClientID,
			ClientName:  a.ClientName,
			ClientPhone: a.ClientPhone,
			ClientEmail: a.ClientEmail,
			Date:        a.StartAt.Format(domain.DateFormat),
			StartTime:   a.StartAt.Format(domain.TimeFormat),
			EndTime:     a.EndAt.Format(domain.TimeFormat),
			Status:      a.Status,
			Notes:       a.Notes,
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}

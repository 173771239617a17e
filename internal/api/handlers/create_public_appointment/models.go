package create_public_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID   int64   `json:"serviceId"`
	StaffID     int64   `json:"staffId"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	Protocol    string  `json:"protocol"`
	ServiceID   int64   `json:"serviceId"`
	StaffID     int64   `json:"staffId"`
	ClientID    *int64  `json:"clientId,omitempty"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.PublicRequest, error) {
	startAt, err := parseStartAt(r.Date, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.PublicRequest{
		ServiceID:   r.ServiceID,
		StaffID:     r.StaffID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		StartAt:     startAt,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		Protocol:    resp.Protocol,
		ServiceID:   resp.ServiceID,
		StaffID:     resp.StaffID,
		ClientID:    resp.ClientID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ClientEmail: resp.ClientEmail,
		Date:        resp.StartAt.Format(domain.DateFormat),
		StartTime:   resp.StartAt.Format(domain.TimeFormat),
		EndTime:     resp.EndAt.Format(domain.TimeFormat),
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

// parseStartAt собирает дату и время начала в один datetime
func parseStartAt(dateStr, timeStr string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	return startTime.At(date), nil
}

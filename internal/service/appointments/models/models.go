package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var errInvalidStatus = errors.New("invalid appointment status")

// ListRequest запрос истории записей (клиента или сотрудника).
// CallerID - ID аутентифицированного пользователя, передается явно из HTTP слоя.
type ListRequest struct {
	CallerID int64
	From     *time.Time // начало окна [From, To), опционально
	To       *time.Time // конец окна (исключительно), опционально
	Statuses []string   // фильтр по статусам, опционально
}

// AppointmentResponse представление записи для вызывающего
type AppointmentResponse struct {
	ID          int64
	Protocol    string
	ServiceID   int64
	StaffID     int64
	ClientID    *int64
	ClientName  string
	ClientPhone string
	ClientEmail string
	StartAt     time.Time
	EndAt       time.Time
	Status      string
	Notes       *string
	CreatedAt   time.Time
}

// ListResponse список записей
type ListResponse struct {
	Appointments []*AppointmentResponse
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		Protocol:    a.Protocol,
		ServiceID:   a.ServiceID,
		StaffID:     a.StaffID,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ClientEmail: a.ClientEmail,
		StartAt:     a.StartAt,
		EndAt:       a.EndAt,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(list []*domain.Appointment) *ListResponse {
	resp := &ListResponse{Appointments: make([]*AppointmentResponse, len(list))}
	for i, a := range list {
		resp.Appointments[i] = FromDomainAppointment(a)
	}
	return resp
}

// ToDomainStatuses валидирует и конвертирует список статусов
func ToDomainStatuses(statuses []string) ([]domain.AppointmentStatus, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	result := make([]domain.AppointmentStatus, 0, len(statuses))
	for _, s := range statuses {
		status := domain.AppointmentStatus(strings.TrimSpace(s))
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", errInvalidStatus, s)
		}
		result = append(result, status)
	}

	return result, nil
}

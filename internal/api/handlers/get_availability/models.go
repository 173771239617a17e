package get_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailability "github.com/m04kA/SMC-SalonService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date                    string   `json:"date"`
	ServiceID               int64    `json:"serviceId"`
	StaffID                 int64    `json:"staffId"`
	ResolvedDurationMinutes int      `json:"resolvedDurationMinutes"`
	Slots                   []string `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(serviceID, staffID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailabilityResponse{
		Date:                    resp.Date.Format(domain.DateFormat),
		ServiceID:               resp.ServiceID,
		StaffID:                 resp.StaffID,
		ResolvedDurationMinutes: resp.ResolvedDurationMinutes,
		Slots:                   slots,
	}
}

package create_blackout

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
)

// CreateBlackoutRequest HTTP request model
type CreateBlackoutRequest struct {
	StartAt string  `json:"startAt"` // RFC3339, например "2025-10-15T09:00:00Z"
	EndAt   string  `json:"endAt"`
	Reason  *string `json:"reason,omitempty"`
}

// BlackoutResponse HTTP response model
type BlackoutResponse struct {
	ID        int64   `json:"id"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlackoutRequest) ToServiceRequest(callerID int64) (*models.CreateBlackoutRequest, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	endAt, err := time.Parse(time.RFC3339, r.EndAt)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlackoutRequest{
		CallerID: callerID,
		StartAt:  startAt,
		EndAt:    endAt,
		Reason:   r.Reason,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BlackoutResponse) *BlackoutResponse {
	return &BlackoutResponse{
		ID:        resp.ID,
		StartAt:   resp.StartAt.Format(time.RFC3339),
		EndAt:     resp.EndAt.Format(time.RFC3339),
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

package list_blackouts

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
)

// BlackoutResponse HTTP response model
type BlackoutResponse struct {
	ID        int64   `json:"id"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ListResponse HTTP response model со списком блокировок
type ListResponse struct {
	Blackouts []*BlackoutResponse `json:"blackouts"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(list []*models.BlackoutResponse) *ListResponse {
	result := &ListResponse{Blackouts: make([]*BlackoutResponse, len(list))}
	for i, b := range list {
		result.Blackouts[i] = &BlackoutResponse{
			ID:        b.ID,
			StartAt:   b.StartAt.Format(time.RFC3339),
			EndAt:     b.EndAt.Format(time.RFC3339),
			Reason:    b.Reason,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}

package get_staff_schedule

import (
	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleDayResponse HTTP response model одного дня расписания
type ScheduleDayResponse struct {
	Weekday int     `json:"weekday"` // 1=Monday .. 7=Sunday
	Active  bool    `json:"active"`
	Start1  *string `json:"start1,omitempty"`
	End1    *string `json:"end1,omitempty"`
	Start2  *string `json:"start2,omitempty"`
	End2    *string `json:"end2,omitempty"`
}

// WeekResponse HTTP response model недельного расписания
type WeekResponse struct {
	Days []ScheduleDayResponse `json:"days"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.WeekResponse) *WeekResponse {
	result := &WeekResponse{Days: make([]ScheduleDayResponse, len(resp.Days))}
	for i, day := range resp.Days {
		result.Days[i] = ScheduleDayResponse{
			Weekday: day.Weekday,
			Active:  day.Active,
			Start1:  timeStringPtr(day.Start1),
			End1:    timeStringPtr(day.End1),
			Start2:  timeStringPtr(day.Start2),
			End2:    timeStringPtr(day.End2),
		}
	}
	return result
}

func timeStringPtr(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

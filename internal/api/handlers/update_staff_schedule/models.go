package update_staff_schedule

import (
	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleDayRequest HTTP request model одного дня расписания
type ScheduleDayRequest struct {
	Weekday int     `json:"weekday"` // 1=Monday .. 7=Sunday
	Active  bool    `json:"active"`
	Start1  *string `json:"start1,omitempty"` // "09:00"
	End1    *string `json:"end1,omitempty"`
	Start2  *string `json:"start2,omitempty"`
	End2    *string `json:"end2,omitempty"`
}

// UpdateWeekRequest HTTP request model полного обновления расписания:
// ровно 7 дней (1..7)
type UpdateWeekRequest struct {
	Days []ScheduleDayRequest `json:"days"`
}

// ScheduleDayResponse HTTP response model одного дня расписания
type ScheduleDayResponse struct {
	Weekday int     `json:"weekday"`
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времен)
func (r *UpdateWeekRequest) ToServiceRequest(callerID int64) (*models.UpdateWeekRequest, error) {
	req := &models.UpdateWeekRequest{
		CallerID: callerID,
		Days:     make([]models.ScheduleDay, len(r.Days)),
	}

	for i, day := range r.Days {
		start1, err := parseTimePtr(day.Start1)
		if err != nil {
			return nil, err
		}
		end1, err := parseTimePtr(day.End1)
		if err != nil {
			return nil, err
		}
		start2, err := parseTimePtr(day.Start2)
		if err != nil {
			return nil, err
		}
		end2, err := parseTimePtr(day.End2)
		if err != nil {
			return nil, err
		}

		req.Days[i] = models.ScheduleDay{
			Weekday: day.Weekday,
			Active:  day.Active,
			Start1:  start1,
			End1:    end1,
			Start2:  start2,
			End2:    end2,
		}
	}

	return req, nil
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

func parseTimePtr(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func timeStringPtr(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

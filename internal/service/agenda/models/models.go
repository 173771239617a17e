package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleDay представление одного дня недельного расписания
type ScheduleDay struct {
	Weekday int // 1=Monday .. 7=Sunday
	Active  bool
	Start1  *types.TimeString
	End1    *types.TimeString
	Start2  *types.TimeString
	End2    *types.TimeString
}

// WeekResponse недельное расписание: всегда 7 дней (1..7),
// отсутствующие в БД дни возвращаются как неактивные
type WeekResponse struct {
	Days []ScheduleDay
}

// UpdateWeekRequest полное обновление недельного расписания.
// Требует ровно 7 дней (1..7) без дубликатов.
type UpdateWeekRequest struct {
	CallerID int64
	Days     []ScheduleDay
}

// CreateBlackoutRequest запрос на создание блокировки
type CreateBlackoutRequest struct {
	CallerID int64
	StartAt  time.Time
	EndAt    time.Time
	Reason   *string
}

// BlackoutResponse представление блокировки
type BlackoutResponse struct {
	ID        int64
	StartAt   time.Time
	EndAt     time.Time
	Reason    *string
	CreatedAt time.Time
}

// FromDomainBlackout конвертирует доменную модель блокировки
func FromDomainBlackout(b *domain.Blackout) *BlackoutResponse {
	return &BlackoutResponse{
		ID:        b.ID,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainScheduleDay конвертирует доменную модель дня расписания
func FromDomainScheduleDay(d *domain.ScheduleDay) ScheduleDay {
	return ScheduleDay{
		Weekday: d.Weekday,
		Active:  d.Active,
		Start1:  d.Start1,
		End1:    d.End1,
		Start2:  d.Start2,
		End2:    d.End2,
	}
}

// ToDomainScheduleDay конвертирует день расписания в доменную модель.
// Для неактивного дня окна затираются.
func (d ScheduleDay) ToDomainScheduleDay(staffID int64) *domain.ScheduleDay {
	day := &domain.ScheduleDay{
		StaffID: staffID,
		Weekday: d.Weekday,
		Active:  d.Active,
	}

	if d.Active {
		day.Start1 = d.Start1
		day.End1 = d.End1
		day.Start2 = d.Start2
		day.End2 = d.End2
	}

	return day
}

package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func timeStr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func fullWeek() []models.ScheduleDay {
	days := make([]models.ScheduleDay, 0, 7)
	for weekday := 1; weekday <= 7; weekday++ {
		days = append(days, models.ScheduleDay{
			Weekday: weekday,
			Active:  weekday <= 5,
			Start1:  windowIf(weekday <= 5, "09:00"),
			End1:    windowIf(weekday <= 5, "18:00"),
		})
	}
	return days
}

func windowIf(active bool, s string) *types.TimeString {
	if !active {
		return nil
	}
	return timeStr(s)
}

func TestValidateWeek_Valid(t *testing.T) {
	assert.NoError(t, validateWeek(fullWeek()))
}

func TestValidateWeek_ValidWithSecondWindow(t *testing.T) {
	days := fullWeek()
	days[0].Start2 = timeStr("14:00")
	days[0].End2 = timeStr("18:00")
	days[0].End1 = timeStr("13:00")

	assert.NoError(t, validateWeek(days))
}

func TestValidateWeek_AdjacentWindowsAllowed(t *testing.T) {
	// start2 == end1 допустимо: окна соприкасаются, но не пересекаются
	days := fullWeek()
	days[0].End1 = timeStr("13:00")
	days[0].Start2 = timeStr("13:00")
	days[0].End2 = timeStr("18:00")

	assert.NoError(t, validateWeek(days))
}

func TestValidateWeek_IncompleteWeek(t *testing.T) {
	tests := []struct {
		name string
		days func() []models.ScheduleDay
	}{
		{
			name: "six days",
			days: func() []models.ScheduleDay { return fullWeek()[:6] },
		},
		{
			name: "duplicate weekday",
			days: func() []models.ScheduleDay {
				days := fullWeek()
				days[6].Weekday = 1
				return days
			},
		},
		{
			name: "weekday out of range",
			days: func() []models.ScheduleDay {
				days := fullWeek()
				days[6].Weekday = 8
				return days
			},
		},
		{
			name: "zero weekday",
			days: func() []models.ScheduleDay {
				days := fullWeek()
				days[0].Weekday = 0
				return days
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateWeek(tt.days()), ErrIncompleteWeek)
		})
	}
}

func TestValidateWeek_InvalidWindows(t *testing.T) {
	tests := []struct {
		name  string
		setup func(day *models.ScheduleDay)
	}{
		{
			name:  "active day without first window",
			setup: func(day *models.ScheduleDay) { day.Start1 = nil; day.End1 = nil },
		},
		{
			name:  "first window start after end",
			setup: func(day *models.ScheduleDay) { day.Start1 = timeStr("18:00"); day.End1 = timeStr("09:00") },
		},
		{
			name:  "first window start equals end",
			setup: func(day *models.ScheduleDay) { day.Start1 = timeStr("09:00"); day.End1 = timeStr("09:00") },
		},
		{
			name:  "half of second window",
			setup: func(day *models.ScheduleDay) { day.Start2 = timeStr("14:00") },
		},
		{
			name: "second window start after end",
			setup: func(day *models.ScheduleDay) {
				day.End1 = timeStr("13:00")
				day.Start2 = timeStr("17:00")
				day.End2 = timeStr("14:00")
			},
		},
		{
			name: "second window overlaps first",
			setup: func(day *models.ScheduleDay) {
				day.End1 = timeStr("13:00")
				day.Start2 = timeStr("12:00")
				day.End2 = timeStr("18:00")
			},
		},
		{
			name:  "malformed time value",
			setup: func(day *models.ScheduleDay) { day.Start1 = timeStr("9am") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := fullWeek()
			tt.setup(&days[0])

			assert.ErrorIs(t, validateWeek(days), ErrInvalidWindow)
		})
	}
}

func TestValidateDayWindows_InactiveDaySkipsChecks(t *testing.T) {
	// Неактивный день валиден даже без окон
	day := models.ScheduleDay{Weekday: 6, Active: false}
	assert.NoError(t, validateDayWindows(day))
}

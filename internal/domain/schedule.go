package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleDay represents the recurring weekly schedule of a staff member for
// one weekday (1=Monday .. 7=Sunday). A day has up to two working windows
// split by a lunch gap: window A (Start1-End1) and optional window B
// (Start2-End2). Absence of a row means the day is off.
type ScheduleDay struct {
	StaffID int64
	Weekday int // 1..7, 1=Monday
	Active  bool

	Start1 *types.TimeString
	End1   *types.TimeString
	Start2 *types.TimeString
	End2   *types.TimeString
}

// HasSecondWindow returns true if window B is configured
func (d *ScheduleDay) HasSecondWindow() bool {
	return d.Start2 != nil && d.End2 != nil
}

// Windows возвращает рабочие окна дня, привязанные к календарной дате.
// Для неактивного дня или дня без валидного окна A возвращает пустой список.
func (d *ScheduleDay) Windows(date time.Time) []Interval {
	if !d.Active {
		return nil
	}

	windows := make([]Interval, 0, 2)

	if w, ok := windowAt(date, d.Start1, d.End1); ok {
		windows = append(windows, w)
	}
	if w, ok := windowAt(date, d.Start2, d.End2); ok {
		windows = append(windows, w)
	}

	return windows
}

func windowAt(date time.Time, start, end *types.TimeString) (Interval, bool) {
	if start == nil || end == nil {
		return Interval{}, false
	}
	if !start.IsBefore(*end) {
		return Interval{}, false
	}
	return Interval{Start: start.At(date), End: end.At(date)}, true
}

// Weekday1to7 converts time.Weekday (Sunday=0) to the 1=Monday..7=Sunday
// numbering used by the schedule table
func Weekday1to7(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

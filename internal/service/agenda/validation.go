package agenda

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateWeek проверяет полное недельное расписание: ровно 7 дней (1..7)
// без дубликатов, каждый день - по правилам окон.
func validateWeek(days []models.ScheduleDay) error {
	if len(days) != domain.WeekdayMax {
		return fmt.Errorf("%w: got %d days", ErrIncompleteWeek, len(days))
	}

	seen := make(map[int]bool, domain.WeekdayMax)
	for _, day := range days {
		if day.Weekday < domain.WeekdayMin || day.Weekday > domain.WeekdayMax {
			return fmt.Errorf("%w: weekday %d out of range", ErrIncompleteWeek, day.Weekday)
		}
		if seen[day.Weekday] {
			return fmt.Errorf("%w: duplicate weekday %d", ErrIncompleteWeek, day.Weekday)
		}
		seen[day.Weekday] = true

		if err := validateDayWindows(day); err != nil {
			return err
		}
	}

	return nil
}

// validateDayWindows проверяет рабочие окна одного дня:
//   - неактивный день окон не требует;
//   - активный день обязан иметь первое окно со start1 < end1;
//   - второе окно опционально, но задается целиком, со start2 < end2
//     и end1 <= start2 (окна не пересекаются и идут по порядку).
func validateDayWindows(day models.ScheduleDay) error {
	if !day.Active {
		return nil
	}

	if day.Start1 == nil || day.End1 == nil {
		return fmt.Errorf("%w: weekday %d: active day requires the first window", ErrInvalidWindow, day.Weekday)
	}
	if err := validateTime(day.Weekday, "start1", *day.Start1); err != nil {
		return err
	}
	if err := validateTime(day.Weekday, "end1", *day.End1); err != nil {
		return err
	}
	if !day.Start1.IsBefore(*day.End1) {
		return fmt.Errorf("%w: weekday %d: start1 must be before end1", ErrInvalidWindow, day.Weekday)
	}

	hasStart2 := day.Start2 != nil
	hasEnd2 := day.End2 != nil
	if hasStart2 != hasEnd2 {
		return fmt.Errorf("%w: weekday %d: the second window requires both start2 and end2", ErrInvalidWindow, day.Weekday)
	}
	if !hasStart2 {
		return nil
	}

	if err := validateTime(day.Weekday, "start2", *day.Start2); err != nil {
		return err
	}
	if err := validateTime(day.Weekday, "end2", *day.End2); err != nil {
		return err
	}
	if !day.Start2.IsBefore(*day.End2) {
		return fmt.Errorf("%w: weekday %d: start2 must be before end2", ErrInvalidWindow, day.Weekday)
	}
	if day.Start2.IsBefore(*day.End1) {
		return fmt.Errorf("%w: weekday %d: the second window must start at or after end1", ErrInvalidWindow, day.Weekday)
	}

	return nil
}

func validateTime(weekday int, field string, value types.TimeString) error {
	if err := value.Validate(); err != nil {
		return fmt.Errorf("%w: weekday %d: %s: %v", ErrInvalidWindow, weekday, field, err)
	}
	return nil
}

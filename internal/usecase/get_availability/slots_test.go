package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func day(hour, minute int) time.Time {
	return time.Date(2025, 10, 13, hour, minute, 0, 0, time.UTC) // понедельник
}

func slotStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

func TestGenerateSlots_StepEqualsDuration(t *testing.T) {
	// Окно 09:00-12:00, длительность 60: слоты 09:00, 10:00, 11:00.
	// 12:00 не попадает - слот не помещается в окно.
	windows := []domain.Interval{{Start: day(9, 0), End: day(12, 0)}}

	slots := generateSlots(windows, 60, nil)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(slots))
}

func TestGenerateSlots_LunchGapExcluded(t *testing.T) {
	// Два окна 09:00-12:00 и 13:00-17:00: обеденный перерыв не дает слотов
	windows := []domain.Interval{
		{Start: day(9, 0), End: day(12, 0)},
		{Start: day(13, 0), End: day(17, 0)},
	}

	slots := generateSlots(windows, 60, nil)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}, slotStrings(slots))
}

func TestGenerateSlots_ThirtyMinuteService(t *testing.T) {
	windows := []domain.Interval{{Start: day(9, 0), End: day(10, 0)}}

	slots := generateSlots(windows, 30, nil)
	assert.Equal(t, []string{"09:00", "09:30"}, slotStrings(slots))
}

func TestGenerateSlots_BlackoutCoversBothSlots(t *testing.T) {
	// Блокировка 09:15-09:45 пересекает оба кандидата 09:00 и 09:30
	windows := []domain.Interval{{Start: day(9, 0), End: day(10, 0)}}
	busy := []domain.Interval{{Start: day(9, 15), End: day(9, 45)}}

	slots := generateSlots(windows, 30, busy)
	assert.Empty(t, slots)
}

func TestGenerateSlots_TouchingIntervalsDoNotConflict(t *testing.T) {
	// Запись 09:00-10:00: слот 10:00 свободен (интервалы полуоткрытые)
	windows := []domain.Interval{{Start: day(9, 0), End: day(12, 0)}}
	busy := []domain.Interval{{Start: day(9, 0), End: day(10, 0)}}

	slots := generateSlots(windows, 60, busy)
	assert.Equal(t, []string{"10:00", "11:00"}, slotStrings(slots))
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	windows := []domain.Interval{{Start: day(9, 0), End: day(12, 0)}}

	assert.Empty(t, generateSlots(windows, 0, nil))
	assert.Empty(t, generateSlots(windows, -30, nil))
}

func TestCollectBusyIntervals(t *testing.T) {
	blackouts := []*domain.Blackout{
		{StartAt: day(9, 0), EndAt: day(10, 0)},
	}
	appointments := []*domain.Appointment{
		{StartAt: day(14, 0), EndAt: day(15, 0)},
	}

	busy := collectBusyIntervals(blackouts, appointments)
	assert.Len(t, busy, 2)
	assert.Equal(t, day(9, 0), busy[0].Start)
	assert.Equal(t, day(14, 0), busy[1].Start)
}

func TestDayBounds(t *testing.T) {
	from, to := dayBounds(day(15, 30))
	assert.Equal(t, day(0, 0), from)
	assert.Equal(t, day(0, 0).AddDate(0, 0, 1), to)
}

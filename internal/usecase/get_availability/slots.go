package get_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateSlots генерирует доступные времена начала для списка рабочих окон.
// Кандидаты идут от начала окна с шагом, равным ДЛИТЕЛЬНОСТИ услуги (не
// фиксированной сетке), пока кандидат целиком помещается в окно. Кандидат
// остается, только если интервал [start, start+duration) не пересекает ни
// один занятый интервал.
func generateSlots(
	windows []domain.Interval,
	durationMinutes int,
	busy []domain.Interval,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if durationMinutes < domain.MinDurationMinutes {
		return slots
	}

	step := time.Duration(durationMinutes) * time.Minute

	for _, window := range windows {
		for start := window.Start; !start.Add(step).After(window.End); start = start.Add(step) {
			candidate := domain.Interval{Start: start, End: start.Add(step)}
			if candidate.IntersectsAny(busy) {
				continue
			}
			slots = append(slots, types.NewTimeString(start))
		}
	}

	return slots
}

// collectBusyIntervals собирает занятые интервалы дня: блокировки сотрудника
// и записи в блокирующих статусах
func collectBusyIntervals(blackouts []*domain.Blackout, appointments []*domain.Appointment) []domain.Interval {
	busy := make([]domain.Interval, 0, len(blackouts)+len(appointments))

	for _, b := range blackouts {
		busy = append(busy, b.Interval())
	}

	for _, a := range appointments {
		busy = append(busy, domain.Interval{Start: a.StartAt, End: a.EndAt})
	}

	return busy
}

// dayBounds возвращает границы календарного дня [00:00, следующие 00:00)
func dayBounds(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return from, from.AddDate(0, 0, 1)
}

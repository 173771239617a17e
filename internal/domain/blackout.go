package domain

import "time"

// Blackout represents an ad-hoc unavailability period layered on top of the
// weekly schedule. May span multiple days; a full-day blackout runs from
// midnight to midnight.
type Blackout struct {
	ID      int64
	StaffID int64
	StartAt time.Time
	EndAt   time.Time
	Reason  *string

	CreatedAt time.Time
}

// Interval returns the blackout as a half-open interval
func (b *Blackout) Interval() Interval {
	return Interval{Start: b.StartAt, End: b.EndAt}
}

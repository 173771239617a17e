package domain

import "time"

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Intersects reports whether two half-open intervals overlap.
// Touching endpoints (one interval ending exactly when another begins)
// do NOT count as an overlap.
func (i Interval) Intersects(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// IntersectsAny reports whether the interval overlaps any of the given intervals
func (i Interval) IntersectsAny(intervals []Interval) bool {
	for _, other := range intervals {
		if i.Intersects(other) {
			return true
		}
	}
	return false
}

package domain

// Service represents an entry in the service catalog
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int // default duration, overridable per staff member
	Price           float64
	Active          bool
}

package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxNotesLength     = 500
	WeekdayMin         = 1 // Monday
	WeekdayMax         = 7 // Sunday
)

// BlockingStatuses список статусов, занимающих календарь.
// Используется в запросах проверки конфликтов.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

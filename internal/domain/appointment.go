package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// IsBlocking returns true if an appointment in this status occupies the calendar.
// Completed and cancelled appointments free the slot and are excluded from
// conflict checks.
func (s AppointmentStatus) IsBlocking() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment represents a booked service appointment.
// ClientID is nil for walk-in/visitor bookings; in that case the client is
// identified by the denormalized name/phone/email fields.
type Appointment struct {
	ID       int64
	Protocol string

	ServiceID int64
	StaffID   int64

	ClientID    *int64
	ClientName  string
	ClientPhone string
	ClientEmail string

	StartAt time.Time
	EndAt   time.Time // fixed at creation: StartAt + resolved duration

	Status AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWalkIn returns true if the appointment is not linked to a client account
func (a *Appointment) IsWalkIn() bool {
	return a.ClientID == nil
}

// AppointmentFilter фильтр для выборки записей клиента или сотрудника
type AppointmentFilter struct {
	ClientID *int64              // фильтр по клиенту (взаимоисключающе со StaffID)
	StaffID  *int64              // фильтр по сотруднику
	From     *time.Time          // начало окна [From, To), опционально
	To       *time.Time          // конец окна (исключительно), опционально
	Statuses []AppointmentStatus // фильтр по статусам, опционально
}

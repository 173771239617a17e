package domain

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleStaff  UserRole = "staff"
	RoleAdmin  UserRole = "admin"
)

// User represents a system user (client, staff member or admin)
type User struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	Role   UserRole
	Active bool
}

// IsBookableStaff returns true if the user can be booked: an active user
// carrying the staff role
func (u *User) IsBookableStaff() bool {
	return u.Active && u.Role == RoleStaff
}

// IsActiveClient returns true if the user is an active client account
func (u *User) IsActiveClient() bool {
	return u.Active && u.Role == RoleClient
}

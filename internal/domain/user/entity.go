package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeID *string
}

// CanManageAttendance checks if user can create or edit attendance
// records for other employees.
func (u *User) CanManageAttendance() bool {
	return u.IsAdmin
}

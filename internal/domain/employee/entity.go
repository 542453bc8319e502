package employee

import "time"

type Employee struct {
	ID               string
	UserID           *string
	EmployeeCode     string
	FullName         string
	Email            string
	Designation      string
	Department       string
	JoiningDate      *time.Time
	WorkingHours     string // schedule label, e.g. "09:00"
	ScheduledSeconds int
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ScheduleDefaults returns the employee's working-hours label and
// scheduled seconds, falling back to the given defaults when unset.
func (e *Employee) ScheduleDefaults(defaultHours string, defaultSeconds int) (string, int) {
	hours := e.WorkingHours
	seconds := e.ScheduledSeconds
	if hours == "" {
		hours = defaultHours
	}
	if seconds <= 0 {
		seconds = defaultSeconds
	}
	return hours, seconds
}

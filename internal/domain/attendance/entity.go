package attendance

import (
	"time"
)

// DayType classifies a calendar day for an employee.
type DayType string

const (
	DayTypeWorkingDay DayType = "WORKING_DAY"
	DayTypeWeekendOff DayType = "WEEKEND_OFF"
	DayTypeHoliday    DayType = "HOLIDAY"
	DayTypeHalfDay    DayType = "HALF_DAY"
	DayTypeLeaveDay   DayType = "LEAVE_DAY"
)

const (
	// DefaultWorkingHours is the schedule label applied when an employee
	// has no schedule of their own.
	DefaultWorkingHours = "09:00"

	// DefaultScheduledSeconds is 9 hours.
	DefaultScheduledSeconds = 32400

	// HalfDayThreshold: a completed day counts as HALF_DAY when worked
	// time is below this fraction of the scheduled time.
	HalfDayThreshold = 0.5

	// AlertMissingPunch is the admin alert message for incomplete days.
	AlertMissingPunch = "In/Out Time Missing"
)

const DateLayout = "2006-01-02"

type Attendance struct {
	ID                 string
	EmployeeID         string
	Date               time.Time
	InTime             *time.Time
	OutTime            *time.Time
	OfficeWorkingHours string
	ScheduledSeconds   int
	WorkedSeconds      int
	ExtraSeconds       int
	ExtraTimeStatus    string // "+", "-" or ""
	DayType            DayType
	AdminAlert         bool
	AdminAlertMessage  string
	DayText            string
	Text               string
	IsDayBeforeJoining bool
	CreatedBy          *string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Join
	EmployeeName        *string
	EmployeeDesignation *string
}

// HasCheckIn reports whether an in punch exists.
func (a *Attendance) HasCheckIn() bool {
	return a.InTime != nil
}

// HasCheckOut reports whether an out punch exists.
func (a *Attendance) HasCheckOut() bool {
	return a.OutTime != nil
}

// IsComplete reports whether both punches exist.
func (a *Attendance) IsComplete() bool {
	return a.InTime != nil && a.OutTime != nil
}

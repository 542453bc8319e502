package attendance

import (
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
)

// Calculator holds the day classification and time accounting rules.
// All methods are pure: same inputs, same outputs, no clock or store
// access. "Today" is always passed in by the caller.
type Calculator struct {
	HalfDayThreshold float64
}

func NewCalculator(halfDayThreshold float64) *Calculator {
	if halfDayThreshold <= 0 || halfDayThreshold >= 1 {
		halfDayThreshold = attendance.HalfDayThreshold
	}
	return &Calculator{HalfDayThreshold: halfDayThreshold}
}

// WorkedSeconds returns worked seconds; 0 if either punch is missing.
// Ordering is not validated here, callers reject out < in first.
func WorkedSeconds(in, out *time.Time) int {
	if in == nil || out == nil {
		return 0
	}
	return int(out.Sub(*in).Seconds())
}

// ExtraSeconds returns overtime (positive) or undertime (negative).
func ExtraSeconds(worked, scheduled int) int {
	return worked - scheduled
}

// ExtraTimeStatus returns the status marker for extra time.
func ExtraTimeStatus(extra int) string {
	if extra > 0 {
		return "+"
	}
	if extra < 0 {
		return "-"
	}
	return ""
}

// ClassifyInput carries everything the day classifier needs.
type ClassifyInput struct {
	Date             time.Time
	JoiningDate      *time.Time
	Holidays         holiday.DateSet
	Today            time.Time
	InTime           *time.Time
	OutTime          *time.Time
	ScheduledSeconds int
}

// ClassifyDay labels a calendar day. Precedence: weekend, then holiday,
// then future, then the half/full split for completed days. A date
// before the joining date only raises the beforeJoining flag, the
// classification itself continues.
func (c *Calculator) ClassifyDay(in ClassifyInput) (attendance.DayType, bool) {
	date := DateOnly(in.Date)
	today := DateOnly(in.Today)

	beforeJoining := false
	if in.JoiningDate != nil && date.Before(DateOnly(*in.JoiningDate)) {
		beforeJoining = true
	}

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return attendance.DayTypeWeekendOff, beforeJoining
	}

	if in.Holidays.Contains(date) {
		return attendance.DayTypeHoliday, beforeJoining
	}

	if date.After(today) {
		return attendance.DayTypeWorkingDay, beforeJoining
	}

	if in.InTime != nil && in.OutTime != nil {
		worked := WorkedSeconds(in.InTime, in.OutTime)
		if float64(worked) < float64(in.ScheduledSeconds)*c.HalfDayThreshold {
			return attendance.DayTypeHalfDay, beforeJoining
		}
		return attendance.DayTypeWorkingDay, beforeJoining
	}

	return attendance.DayTypeWorkingDay, beforeJoining
}

// ShouldAlert reports whether a missing punch should raise an admin
// alert. Off days never alert.
func ShouldAlert(dayType attendance.DayType, hasIn, hasOut bool) bool {
	switch dayType {
	case attendance.DayTypeHoliday, attendance.DayTypeWeekendOff, attendance.DayTypeLeaveDay:
		return false
	}
	return !(hasIn && hasOut)
}

// Recompute runs the full pipeline over a record in place: classify,
// account worked/extra time, set the status marker, evaluate the
// alert. Records already stamped LEAVE_DAY are left untouched so an
// approved leave survives later punch edits.
func (c *Calculator) Recompute(rec *attendance.Attendance, joining *time.Time, holidays holiday.DateSet, today time.Time) {
	if rec.DayType == attendance.DayTypeLeaveDay {
		return
	}

	dayType, beforeJoining := c.ClassifyDay(ClassifyInput{
		Date:             rec.Date,
		JoiningDate:      joining,
		Holidays:         holidays,
		Today:            today,
		InTime:           rec.InTime,
		OutTime:          rec.OutTime,
		ScheduledSeconds: rec.ScheduledSeconds,
	})
	rec.DayType = dayType
	rec.IsDayBeforeJoining = beforeJoining

	rec.WorkedSeconds = WorkedSeconds(rec.InTime, rec.OutTime)
	rec.ExtraSeconds = ExtraSeconds(rec.WorkedSeconds, rec.ScheduledSeconds)
	rec.ExtraTimeStatus = ExtraTimeStatus(rec.ExtraSeconds)

	if ShouldAlert(rec.DayType, rec.InTime != nil, rec.OutTime != nil) {
		rec.AdminAlert = true
		rec.AdminAlertMessage = attendance.AlertMissingPunch
	} else {
		rec.AdminAlert = false
		rec.AdminAlertMessage = ""
	}
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package attendance

import (
	"fmt"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/employee"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
)

// MonthlyInput carries everything needed to reconstruct one employee
// month. Records outside the month are ignored.
type MonthlyInput struct {
	Employee         employee.Employee
	Month            int // 1-12, validated by the caller
	Year             int
	Records          []attendance.Attendance
	Holidays         holiday.DateSet
	Today            time.Time
	DefaultHours     string
	DefaultScheduled int
}

// BuildMonthlyView reconstructs a full calendar month: every day gets
// an entry, stored records are merged in and the gaps become virtual
// zero-valued days. Pure function over its inputs.
func (c *Calculator) BuildMonthlyView(in MonthlyInput) attendance.MonthlyViewResponse {
	firstOfMonth := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, time.UTC)
	numDays := firstOfMonth.AddDate(0, 1, -1).Day()
	today := DateOnly(in.Today)

	recordByDate := make(map[string]attendance.Attendance, len(in.Records))
	for _, rec := range in.Records {
		recordByDate[DateOnly(rec.Date).Format(attendance.DateLayout)] = rec
	}

	defaultHours := in.DefaultHours
	if defaultHours == "" {
		defaultHours = attendance.DefaultWorkingHours
	}
	defaultScheduled := in.DefaultScheduled
	if defaultScheduled <= 0 {
		defaultScheduled = attendance.DefaultScheduledSeconds
	}

	days := make([]attendance.MonthlyDayRecord, 0, numDays)
	totalWorked := 0
	totalExtra := 0
	secondsToCompensate := 0

	for day := 1; day <= numDays; day++ {
		date := time.Date(in.Year, time.Month(in.Month), day, 0, 0, 0, 0, time.UTC)
		rec, stored := recordByDate[date.Format(attendance.DateLayout)]

		entry := attendance.MonthlyDayRecord{
			Date:               date.Format(attendance.DateLayout),
			Day:                date.Format(attendance.DayNameLayout),
			OfficeWorkingHours: defaultHours,
			ScheduledSeconds:   defaultScheduled,
		}

		dayType := attendance.DayTypeLeaveDay
		if !stored || rec.DayType != attendance.DayTypeLeaveDay {
			// Before-joining days keep WORKING_DAY in this view; the
			// flag is not surfaced per day.
			dayType, _ = c.ClassifyDay(ClassifyInput{
				Date:             date,
				JoiningDate:      in.Employee.JoiningDate,
				Holidays:         in.Holidays,
				Today:            today,
				InTime:           punchOrNil(stored, rec.InTime),
				OutTime:          punchOrNil(stored, rec.OutTime),
				ScheduledSeconds: scheduledOr(stored, rec.ScheduledSeconds, defaultScheduled),
			})
		}
		entry.DayType = dayType

		if stored {
			if rec.OfficeWorkingHours != "" {
				entry.OfficeWorkingHours = rec.OfficeWorkingHours
			}
			if rec.ScheduledSeconds > 0 {
				entry.ScheduledSeconds = rec.ScheduledSeconds
			}
			entry.InTime = attendance.FormatDateTimeISO(rec.InTime)
			entry.OutTime = attendance.FormatDateTimeISO(rec.OutTime)
			entry.WorkedSeconds = rec.WorkedSeconds
			entry.ExtraSeconds = rec.ExtraSeconds
			entry.TotalTime = attendance.FormatSecondsToTime(rec.WorkedSeconds)
			entry.ExtraTime = attendance.FormatSecondsToTime(rec.ExtraSeconds)
			entry.ExtraTimeStatus = rec.ExtraTimeStatus
			entry.DayText = rec.DayText
			entry.Text = rec.Text

			totalWorked += rec.WorkedSeconds
			totalExtra += rec.ExtraSeconds
			if rec.ExtraSeconds < 0 {
				secondsToCompensate += -rec.ExtraSeconds
			}
		}

		// Alerts follow the single-record rule but are additionally
		// suppressed for future days; weekend/holiday days already
		// never alert.
		isFuture := date.After(today)
		hasIn := stored && rec.InTime != nil
		hasOut := stored && rec.OutTime != nil
		if !isFuture && ShouldAlert(dayType, hasIn, hasOut) {
			entry.AdminAlert = 1
			entry.AdminAlertMessage = attendance.AlertMissingPunch
		}

		days = append(days, entry)
	}

	prevMonth, prevYear := in.Month-1, in.Year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, in.Year-1
	}
	nextMonth, nextYear := in.Month+1, in.Year
	if nextMonth == 13 {
		nextMonth, nextYear = 1, in.Year+1
	}

	totalWorkedStr := attendance.FormatSecondsToHoursMins(totalWorked)

	jobTitle := in.Employee.Designation

	return attendance.MonthlyViewResponse{
		Attendance: days,
		CompensationSummary: attendance.CompensationSummary{
			SecondsToBeCompensate: secondsToCompensate,
			TimeToBeCompensate:    attendance.FormatSecondsToTime(secondsToCompensate),
		},
		Month:     in.Month,
		MonthName: time.Month(in.Month).String(),
		MonthSummary: attendance.MonthSummary{
			ActualWorkingHours: totalWorkedStr,
			// Completed hours are currently the same aggregate as actual
			// hours; kept as a separate field for the API shape.
			CompletedWorkingHours: totalWorkedStr,
		},
		NextMonth: attendance.AdjacentMonth{
			Year:      fmt.Sprintf("%d", nextYear),
			Month:     fmt.Sprintf("%02d", nextMonth),
			MonthName: time.Month(nextMonth).String(),
		},
		PreviousMonth: attendance.AdjacentMonth{
			Year:      fmt.Sprintf("%d", prevYear),
			Month:     fmt.Sprintf("%02d", prevMonth),
			MonthName: time.Month(prevMonth).String(),
		},
		UserName:     in.Employee.FullName,
		UserID:       in.Employee.ID,
		UserJobTitle: jobTitle,
		Year:         in.Year,
	}
}

func punchOrNil(stored bool, t *time.Time) *time.Time {
	if !stored {
		return nil
	}
	return t
}

func scheduledOr(stored bool, scheduled, fallback int) int {
	if !stored || scheduled <= 0 {
		return fallback
	}
	return scheduled
}

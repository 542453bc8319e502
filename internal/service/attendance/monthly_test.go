package attendance

import (
	"testing"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/employee"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:          "emp-1",
		FullName:    "Asha Verma",
		Designation: "Software Engineer",
	}
}

func TestBuildMonthlyViewEmptyMonth(t *testing.T) {
	calc := NewCalculator(0.5)

	// November 2025 has 30 days; today well past the month end.
	out := calc.BuildMonthlyView(MonthlyInput{
		Employee: testEmployee(),
		Month:    11,
		Year:     2025,
		Holidays: holiday.DateSet{},
		Today:    time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
	})

	if len(out.Attendance) != 30 {
		t.Fatalf("day entries = %d, want 30", len(out.Attendance))
	}
	for _, day := range out.Attendance {
		if day.DayType != attendance.DayTypeWorkingDay && day.DayType != attendance.DayTypeWeekendOff {
			t.Errorf("%s: DayType = %s, want WORKING_DAY or WEEKEND_OFF", day.Date, day.DayType)
		}
		if day.WorkedSeconds != 0 || day.ExtraSeconds != 0 {
			t.Errorf("%s: virtual day has nonzero seconds", day.Date)
		}
	}
	if out.CompensationSummary.SecondsToBeCompensate != 0 {
		t.Errorf("compensation = %d, want 0", out.CompensationSummary.SecondsToBeCompensate)
	}
	if out.MonthSummary.ActualWorkingHours != "0 Hrs 0 Mins" {
		t.Errorf("actual working hours = %q, want %q", out.MonthSummary.ActualWorkingHours, "0 Hrs 0 Mins")
	}
	if out.MonthSummary.CompletedWorkingHours != out.MonthSummary.ActualWorkingHours {
		t.Error("completed hours must equal actual hours")
	}
	if out.UserName != "Asha Verma" || out.UserID != "emp-1" || out.UserJobTitle != "Software Engineer" {
		t.Errorf("employee header fields wrong: %q %q %q", out.UserName, out.UserID, out.UserJobTitle)
	}
}

func TestBuildMonthlyViewAggregates(t *testing.T) {
	calc := NewCalculator(0.5)

	in1 := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	out1 := time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC) // +3600
	in2 := time.Date(2025, 12, 2, 9, 0, 0, 0, time.UTC)
	out2 := time.Date(2025, 12, 2, 17, 0, 0, 0, time.UTC) // -3600

	records := []attendance.Attendance{
		{
			Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), InTime: &in1, OutTime: &out1,
			ScheduledSeconds: 32400, WorkedSeconds: 36000, ExtraSeconds: 3600, ExtraTimeStatus: "+",
		},
		{
			Date: time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC), InTime: &in2, OutTime: &out2,
			ScheduledSeconds: 32400, WorkedSeconds: 28800, ExtraSeconds: -3600, ExtraTimeStatus: "-",
		},
	}

	out := calc.BuildMonthlyView(MonthlyInput{
		Employee: testEmployee(),
		Month:    12,
		Year:     2025,
		Records:  records,
		Holidays: holiday.DateSet{},
		Today:    time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
	})

	if len(out.Attendance) != 31 {
		t.Fatalf("day entries = %d, want 31", len(out.Attendance))
	}
	// Compensation counts only the negative day.
	if out.CompensationSummary.SecondsToBeCompensate != 3600 {
		t.Errorf("compensation = %d, want 3600", out.CompensationSummary.SecondsToBeCompensate)
	}
	// 36000 + 28800 = 64800 = 18 Hrs.
	if out.MonthSummary.ActualWorkingHours != "18 Hrs 0 Mins" {
		t.Errorf("actual hours = %q, want %q", out.MonthSummary.ActualWorkingHours, "18 Hrs 0 Mins")
	}

	first := out.Attendance[0]
	if first.WorkedSeconds != 36000 || first.ExtraTimeStatus != "+" {
		t.Errorf("stored day not merged: %+v", first)
	}
	if first.InTime != "2025-12-01T09:00:00Z" {
		t.Errorf("InTime = %q, want ISO string", first.InTime)
	}
}

func TestBuildMonthlyViewAlertSuppression(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC) // Wednesday

	holidays := holiday.DateSet{"2025-12-08": {}} // Monday

	out := calc.BuildMonthlyView(MonthlyInput{
		Employee: testEmployee(),
		Month:    12,
		Year:     2025,
		Holidays: holidays,
		Today:    today,
	})

	for _, day := range out.Attendance {
		date, _ := time.Parse(attendance.DateLayout, day.Date)
		switch {
		case date.After(today):
			if day.AdminAlert != 0 {
				t.Errorf("%s: future day alerts", day.Date)
			}
		case day.DayType == attendance.DayTypeWeekendOff, day.DayType == attendance.DayTypeHoliday:
			if day.AdminAlert != 0 {
				t.Errorf("%s: off day alerts", day.Date)
			}
		default:
			// Past working day with no record must alert.
			if day.AdminAlert != 1 || day.AdminAlertMessage != attendance.AlertMissingPunch {
				t.Errorf("%s: missing-punch day does not alert", day.Date)
			}
		}
	}
}

func TestBuildMonthlyViewLeaveDaySurvives(t *testing.T) {
	calc := NewCalculator(0.5)

	records := []attendance.Attendance{
		{
			Date:             time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC), // Tuesday
			ScheduledSeconds: 32400,
			DayType:          attendance.DayTypeLeaveDay,
			DayText:          "Casual Leave",
		},
	}

	out := calc.BuildMonthlyView(MonthlyInput{
		Employee: testEmployee(),
		Month:    12,
		Year:     2025,
		Records:  records,
		Holidays: holiday.DateSet{},
		Today:    time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
	})

	day := out.Attendance[1]
	if day.DayType != attendance.DayTypeLeaveDay {
		t.Errorf("DayType = %s, want LEAVE_DAY", day.DayType)
	}
	if day.AdminAlert != 0 {
		t.Error("LEAVE_DAY must not alert")
	}
	if day.DayText != "Casual Leave" {
		t.Errorf("DayText = %q, want %q", day.DayText, "Casual Leave")
	}
}

func TestBuildMonthlyViewRollover(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	jan := calc.BuildMonthlyView(MonthlyInput{
		Employee: testEmployee(), Month: 1, Year: 2026,
		Holidays: holiday.DateSet{}, Today: today,
	})
	if jan.PreviousMonth.Year != "2025" || jan.PreviousMonth.Month != "12" {
		t.Errorf("January previous = %s-%s, want 2025-12", jan.PreviousMonth.Year, jan.PreviousMonth.Month)
	}
	if jan.NextMonth.Year != "2026" || jan.NextMonth.Month != "02" {
		t.Errorf("January next = %s-%s, want 2026-02", jan.NextMonth.Year, jan.NextMonth.Month)
	}

	dec := calc.BuildMonthlyView(MonthlyInput{
		Employee: testEmployee(), Month: 12, Year: 2025,
		Holidays: holiday.DateSet{}, Today: today,
	})
	if dec.NextMonth.Year != "2026" || dec.NextMonth.Month != "01" {
		t.Errorf("December next = %s-%s, want 2026-01", dec.NextMonth.Year, dec.NextMonth.Month)
	}
	if dec.PreviousMonth.Year != "2025" || dec.PreviousMonth.Month != "11" {
		t.Errorf("December previous = %s-%s, want 2025-11", dec.PreviousMonth.Year, dec.PreviousMonth.Month)
	}
	if dec.MonthName != "December" || dec.NextMonth.MonthName != "January" {
		t.Errorf("month names wrong: %q next %q", dec.MonthName, dec.NextMonth.MonthName)
	}
}

func TestBuildMonthlyViewBeforeJoining(t *testing.T) {
	calc := NewCalculator(0.5)
	joining := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	emp := testEmployee()
	emp.JoiningDate = &joining

	out := calc.BuildMonthlyView(MonthlyInput{
		Employee: emp, Month: 12, Year: 2025,
		Holidays: holiday.DateSet{},
		Today:    time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
	})

	// Dec 1 is a Monday before joining: stays WORKING_DAY in this view.
	if out.Attendance[0].DayType != attendance.DayTypeWorkingDay {
		t.Errorf("before-joining day = %s, want WORKING_DAY", out.Attendance[0].DayType)
	}
}

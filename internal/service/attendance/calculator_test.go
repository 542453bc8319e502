package attendance

import (
	"testing"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
)

func TestWorkedSeconds(t *testing.T) {
	in := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 12, 1, 18, 21, 30, 0, time.UTC)

	cases := []struct {
		name string
		in   *time.Time
		out  *time.Time
		want int
	}{
		{"both punches", &in, &out, 33690},
		{"missing out", &in, nil, 0},
		{"missing in", nil, &out, 0},
		{"both missing", nil, nil, 0},
		{"same instant", &in, &in, 0},
	}
	for _, c := range cases {
		got := WorkedSeconds(c.in, c.out)
		if got != c.want {
			t.Errorf("%s: WorkedSeconds = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestExtraSecondsIdentity(t *testing.T) {
	cases := []struct {
		worked    int
		scheduled int
	}{
		{33690, 32400},
		{0, 32400},
		{32400, 32400},
		{16199, 32400},
	}
	for _, c := range cases {
		extra := ExtraSeconds(c.worked, c.scheduled)
		if extra+c.scheduled != c.worked {
			t.Errorf("ExtraSeconds(%d, %d) breaks identity: got %d", c.worked, c.scheduled, extra)
		}
	}
}

func TestExtraTimeStatus(t *testing.T) {
	cases := []struct {
		extra int
		want  string
	}{
		{1290, "+"},
		{-32400, "-"},
		{0, ""},
		{1, "+"},
		{-1, "-"},
	}
	for _, c := range cases {
		got := ExtraTimeStatus(c.extra)
		if got != c.want {
			t.Errorf("ExtraTimeStatus(%d) = %q, want %q", c.extra, got, c.want)
		}
	}
}

func TestClassifyDayPrecedence(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC) // Wednesday

	saturday := time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)
	futureWeekdayHoliday := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC) // Thursday, today+15

	holidays := holiday.DateSet{
		saturday.Format(holiday.DateLayout):             {},
		monday.Format(holiday.DateLayout):               {},
		futureWeekdayHoliday.Format(holiday.DateLayout): {},
	}

	// Saturday that is also a holiday stays WEEKEND_OFF.
	got, _ := calc.ClassifyDay(ClassifyInput{
		Date: saturday, Holidays: holidays, Today: today, ScheduledSeconds: 32400,
	})
	if got != attendance.DayTypeWeekendOff {
		t.Errorf("Saturday holiday = %s, want WEEKEND_OFF", got)
	}

	// Weekday holiday classifies HOLIDAY.
	got, _ = calc.ClassifyDay(ClassifyInput{
		Date: monday, Holidays: holidays, Today: today, ScheduledSeconds: 32400,
	})
	if got != attendance.DayTypeHoliday {
		t.Errorf("Monday holiday = %s, want HOLIDAY", got)
	}

	// A future holiday is still HOLIDAY, not WORKING_DAY: the holiday
	// check runs before the future-date check.
	got, _ = calc.ClassifyDay(ClassifyInput{
		Date: futureWeekdayHoliday, Holidays: holidays, Today: today, ScheduledSeconds: 32400,
	})
	if got != attendance.DayTypeHoliday {
		t.Errorf("future holiday = %s, want HOLIDAY", got)
	}

	// Plain future weekday is WORKING_DAY.
	futureWeekday := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC) // Monday
	got, _ = calc.ClassifyDay(ClassifyInput{
		Date: futureWeekday, Holidays: holidays, Today: today, ScheduledSeconds: 32400,
	})
	if got != attendance.DayTypeWorkingDay {
		t.Errorf("future weekday = %s, want WORKING_DAY", got)
	}
}

func TestClassifyDayBeforeJoining(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	joining := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)

	// A weekday before joining still classifies WORKING_DAY, only the
	// flag is raised.
	date := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC) // Wednesday
	got, beforeJoining := calc.ClassifyDay(ClassifyInput{
		Date: date, JoiningDate: &joining, Holidays: holiday.DateSet{},
		Today: today, ScheduledSeconds: 32400,
	})
	if got != attendance.DayTypeWorkingDay {
		t.Errorf("before-joining weekday = %s, want WORKING_DAY", got)
	}
	if !beforeJoining {
		t.Error("beforeJoining = false, want true")
	}

	// On or after joining the flag stays down.
	_, beforeJoining = calc.ClassifyDay(ClassifyInput{
		Date: joining, JoiningDate: &joining, Holidays: holiday.DateSet{},
		Today: today, ScheduledSeconds: 32400,
	})
	if beforeJoining {
		t.Error("beforeJoining = true on joining date, want false")
	}
}

func TestClassifyDayHalfDayBoundary(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC) // Tuesday

	cases := []struct {
		name   string
		worked int
		want   attendance.DayType
	}{
		{"one below threshold", 16199, attendance.DayTypeHalfDay},
		{"exactly at threshold", 16200, attendance.DayTypeWorkingDay},
		{"full day", 32400, attendance.DayTypeWorkingDay},
		{"zero worked", 0, attendance.DayTypeHalfDay},
	}
	for _, c := range cases {
		in := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)
		out := in.Add(time.Duration(c.worked) * time.Second)
		got, _ := calc.ClassifyDay(ClassifyInput{
			Date: date, Holidays: holiday.DateSet{}, Today: today,
			InTime: &in, OutTime: &out, ScheduledSeconds: 32400,
		})
		if got != c.want {
			t.Errorf("%s: ClassifyDay = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestClassifyDayIncomplete(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	in := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)

	// Only an in punch: still WORKING_DAY, never HALF_DAY.
	got, _ := calc.ClassifyDay(ClassifyInput{
		Date: date, Holidays: holiday.DateSet{}, Today: today,
		InTime: &in, ScheduledSeconds: 32400,
	})
	if got != attendance.DayTypeWorkingDay {
		t.Errorf("in-only day = %s, want WORKING_DAY", got)
	}
}

func TestClassifyDayIdempotent(t *testing.T) {
	calc := NewCalculator(0.5)
	in := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 12, 9, 13, 0, 0, 0, time.UTC)
	input := ClassifyInput{
		Date:             time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
		Holidays:         holiday.DateSet{},
		Today:            time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		InTime:           &in,
		OutTime:          &out,
		ScheduledSeconds: 32400,
	}
	first, firstFlag := calc.ClassifyDay(input)
	second, secondFlag := calc.ClassifyDay(input)
	if first != second || firstFlag != secondFlag {
		t.Errorf("ClassifyDay not idempotent: (%s,%v) then (%s,%v)", first, firstFlag, second, secondFlag)
	}
}

func TestShouldAlert(t *testing.T) {
	cases := []struct {
		name    string
		dayType attendance.DayType
		hasIn   bool
		hasOut  bool
		want    bool
	}{
		{"working complete", attendance.DayTypeWorkingDay, true, true, false},
		{"working missing out", attendance.DayTypeWorkingDay, true, false, true},
		{"working missing in", attendance.DayTypeWorkingDay, false, true, true},
		{"working missing both", attendance.DayTypeWorkingDay, false, false, true},
		{"half day incomplete", attendance.DayTypeHalfDay, true, false, true},
		{"holiday missing both", attendance.DayTypeHoliday, false, false, false},
		{"weekend missing both", attendance.DayTypeWeekendOff, false, false, false},
		{"leave day missing both", attendance.DayTypeLeaveDay, false, false, false},
	}
	for _, c := range cases {
		got := ShouldAlert(c.dayType, c.hasIn, c.hasOut)
		if got != c.want {
			t.Errorf("%s: ShouldAlert = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRecompute(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	in := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 12, 9, 18, 21, 30, 0, time.UTC)
	rec := &attendance.Attendance{
		Date:             time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
		InTime:           &in,
		OutTime:          &out,
		ScheduledSeconds: 32400,
	}

	calc.Recompute(rec, nil, holiday.DateSet{}, today)

	if rec.DayType != attendance.DayTypeWorkingDay {
		t.Errorf("DayType = %s, want WORKING_DAY", rec.DayType)
	}
	if rec.WorkedSeconds != 33690 {
		t.Errorf("WorkedSeconds = %d, want 33690", rec.WorkedSeconds)
	}
	if rec.ExtraSeconds != 1290 {
		t.Errorf("ExtraSeconds = %d, want 1290", rec.ExtraSeconds)
	}
	if rec.ExtraTimeStatus != "+" {
		t.Errorf("ExtraTimeStatus = %q, want +", rec.ExtraTimeStatus)
	}
	if rec.AdminAlert {
		t.Error("AdminAlert = true on complete day, want false")
	}
}

func TestRecomputeMissingPunchAlert(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	in := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)
	rec := &attendance.Attendance{
		Date:             time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
		InTime:           &in,
		ScheduledSeconds: 32400,
	}

	calc.Recompute(rec, nil, holiday.DateSet{}, today)

	if rec.WorkedSeconds != 0 {
		t.Errorf("WorkedSeconds = %d, want 0 with missing punch", rec.WorkedSeconds)
	}
	if rec.ExtraSeconds != -32400 {
		t.Errorf("ExtraSeconds = %d, want -32400", rec.ExtraSeconds)
	}
	if rec.ExtraTimeStatus != "-" {
		t.Errorf("ExtraTimeStatus = %q, want -", rec.ExtraTimeStatus)
	}
	if !rec.AdminAlert {
		t.Error("AdminAlert = false, want true")
	}
	if rec.AdminAlertMessage != attendance.AlertMissingPunch {
		t.Errorf("AdminAlertMessage = %q, want %q", rec.AdminAlertMessage, attendance.AlertMissingPunch)
	}

	// Completing the day clears the alert.
	out := time.Date(2025, 12, 9, 18, 0, 0, 0, time.UTC)
	rec.OutTime = &out
	calc.Recompute(rec, nil, holiday.DateSet{}, today)
	if rec.AdminAlert || rec.AdminAlertMessage != "" {
		t.Errorf("alert not cleared: %v %q", rec.AdminAlert, rec.AdminAlertMessage)
	}
}

func TestRecomputeLeaveDayShortCircuit(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	in := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)
	rec := &attendance.Attendance{
		Date:             time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
		InTime:           &in,
		ScheduledSeconds: 32400,
		DayType:          attendance.DayTypeLeaveDay,
		DayText:          "Casual Leave",
	}

	calc.Recompute(rec, nil, holiday.DateSet{}, today)

	if rec.DayType != attendance.DayTypeLeaveDay {
		t.Errorf("DayType = %s, LEAVE_DAY must survive recompute", rec.DayType)
	}
	if rec.AdminAlert {
		t.Error("AdminAlert raised on LEAVE_DAY, want none")
	}
	if rec.WorkedSeconds != 0 || rec.ExtraSeconds != 0 {
		t.Errorf("LEAVE_DAY fields mutated: worked=%d extra=%d", rec.WorkedSeconds, rec.ExtraSeconds)
	}
}

func TestRecomputeWeekend(t *testing.T) {
	calc := NewCalculator(0.5)
	today := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

	rec := &attendance.Attendance{
		Date:             time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC), // Saturday
		ScheduledSeconds: 32400,
	}
	calc.Recompute(rec, nil, holiday.DateSet{}, today)

	if rec.DayType != attendance.DayTypeWeekendOff {
		t.Errorf("DayType = %s, want WEEKEND_OFF", rec.DayType)
	}
	if rec.AdminAlert {
		t.Error("AdminAlert on weekend, want none")
	}
}

func TestDateOnly(t *testing.T) {
	at := time.Date(2025, 12, 9, 17, 45, 12, 999, time.UTC)
	got := DateOnly(at)
	want := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
}

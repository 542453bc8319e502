package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/employee"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/leave"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeLeaveRepo struct {
	leaves map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = uuid.NewString()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	r.leaves[req.ID] = req
	return req, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := r.leaves[id]; ok {
		return req, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (r *fakeLeaveRepo) GetByEmployee(_ context.Context, employeeID string, _ leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range r.leaves {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range r.leaves {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, rejectionReason *string) error {
	req, ok := r.leaves[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	req.Status = status
	req.RejectionReason = rejectionReason
	r.leaves[id] = req
	return nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance // key employeeID|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(dateLayout)
}

func (r *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	rec.ID = uuid.NewString()
	r.records[attKey(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if rec, ok := r.records[attKey(employeeID, date)]; ok {
		cp := rec
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return r.GetByEmployeeAndDate(ctx, employeeID, date)
}

func (r *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Attendance) error {
	r.records[attKey(rec.EmployeeID, rec.Date)] = rec
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) GetMyAttendance(_ context.Context, _ string, _ attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := r.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	h.ID = uuid.NewString()
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *fakeHolidayRepo) GetByID(_ context.Context, _ string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (r *fakeHolidayRepo) GetAll(_ context.Context) ([]holiday.Holiday, error) {
	return r.holidays, nil
}

func (r *fakeHolidayRepo) GetActiveInRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if h.IsActive && !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Update(_ context.Context, _ holiday.Holiday) error { return nil }
func (r *fakeHolidayRepo) Delete(_ context.Context, _ string) error          { return nil }

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func authContext(t *testing.T, userID, employeeID string, isAdmin bool) context.Context {
	t.Helper()
	claims := map[string]interface{}{
		"user_id":  userID,
		"is_admin": isAdmin,
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := testTokenAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type testEnv struct {
	svc     *LeaveServiceImpl
	leaves  *fakeLeaveRepo
	att     *fakeAttendanceRepo
	holiday *fakeHolidayRepo
}

func newTestEnv() testEnv {
	leaves := newFakeLeaveRepo()
	att := newFakeAttendanceRepo()
	hol := &fakeHolidayRepo{}
	emp := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Asha Verma", IsActive: true},
	}}
	svc := NewLeaveService(&fakeTxManager{}, leaves, att, emp, hol, NewDayCounter()).(*LeaveServiceImpl)
	return testEnv{svc: svc, leaves: leaves, att: att, holiday: hol}
}

func TestSubmitCreatesPending(t *testing.T) {
	env := newTestEnv()
	ctx := authContext(t, "user-1", "emp-1", false)

	resp, err := env.svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-12-10",
		ToDate:    "2025-12-12",
		NoOfDays:  "3",
		Reason:    "family function",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "3", resp.NoOfDays)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestSubmitRejectsInvertedRange(t *testing.T) {
	env := newTestEnv()
	ctx := authContext(t, "user-1", "emp-1", false)

	_, err := env.svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-12-12",
		ToDate:    "2025-12-10",
		NoOfDays:  "3",
		Reason:    "family function",
	})
	assert.Error(t, err)
}

func TestSubmitAllowsHalfDays(t *testing.T) {
	env := newTestEnv()
	ctx := authContext(t, "user-1", "emp-1", false)

	resp, err := env.svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeSick),
		FromDate:  "2025-12-10",
		ToDate:    "2025-12-10",
		NoOfDays:  "0.5",
		Reason:    "doctor visit",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.5", resp.NoOfDays)
}

func TestApproveStampsLeaveDays(t *testing.T) {
	env := newTestEnv()
	userCtx := authContext(t, "user-1", "emp-1", false)
	adminCtx := authContext(t, "admin-1", "", true)

	// Wed Dec 10 .. Mon Dec 15 2025; Dec 12 (Friday) is a holiday, Dec
	// 13/14 are the weekend.
	env.holiday.holidays = []holiday.Holiday{
		{Date: time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC), Name: "Foundation Day", IsActive: true},
	}

	// Dec 10 already has a stored punch record.
	in := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	_, err := env.att.Create(userCtx, attendance.Attendance{
		EmployeeID:        "emp-1",
		Date:              time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		InTime:            &in,
		ScheduledSeconds:  attendance.DefaultScheduledSeconds,
		DayType:           attendance.DayTypeWorkingDay,
		AdminAlert:        true,
		AdminAlertMessage: attendance.AlertMissingPunch,
	})
	require.NoError(t, err)

	submitted, err := env.svc.Submit(userCtx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-12-10",
		ToDate:    "2025-12-15",
		NoOfDays:  "4",
		Reason:    "travel",
	})
	require.NoError(t, err)

	resp, err := env.svc.Approve(adminCtx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)

	// Existing Dec 10 record converted, alert cleared.
	dec10, _ := env.att.GetByEmployeeAndDate(userCtx, "emp-1", time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, dec10)
	assert.Equal(t, attendance.DayTypeLeaveDay, dec10.DayType)
	assert.False(t, dec10.AdminAlert)
	assert.Equal(t, "Casual Leave", dec10.DayText)

	// Dec 11 and Dec 15 get fresh LEAVE_DAY records.
	for _, day := range []int{11, 15} {
		rec, _ := env.att.GetByEmployeeAndDate(userCtx, "emp-1", time.Date(2025, 12, day, 0, 0, 0, 0, time.UTC))
		require.NotNil(t, rec, "day %d", day)
		assert.Equal(t, attendance.DayTypeLeaveDay, rec.DayType)
	}

	// Holiday and weekend days are skipped.
	for _, day := range []int{12, 13, 14} {
		rec, _ := env.att.GetByEmployeeAndDate(userCtx, "emp-1", time.Date(2025, 12, day, 0, 0, 0, 0, time.UTC))
		assert.Nil(t, rec, "day %d must not be stamped", day)
	}
}

func TestApproveTwiceConflicts(t *testing.T) {
	env := newTestEnv()
	userCtx := authContext(t, "user-1", "emp-1", false)
	adminCtx := authContext(t, "admin-1", "", true)

	submitted, err := env.svc.Submit(userCtx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-12-10",
		ToDate:    "2025-12-10",
		NoOfDays:  "1",
		Reason:    "errand",
	})
	require.NoError(t, err)

	_, err = env.svc.Approve(adminCtx, submitted.ID)
	require.NoError(t, err)

	_, err = env.svc.Approve(adminCtx, submitted.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRejectRequiresReason(t *testing.T) {
	env := newTestEnv()
	adminCtx := authContext(t, "admin-1", "", true)

	_, err := env.svc.Reject(adminCtx, leave.RejectLeaveRequest{ID: "some-id"})
	assert.Error(t, err)
}

func TestRejectSetsReason(t *testing.T) {
	env := newTestEnv()
	userCtx := authContext(t, "user-1", "emp-1", false)
	adminCtx := authContext(t, "admin-1", "", true)

	submitted, err := env.svc.Submit(userCtx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeEarned),
		FromDate:  "2025-12-10",
		ToDate:    "2025-12-11",
		NoOfDays:  "2",
		Reason:    "vacation",
	})
	require.NoError(t, err)

	resp, err := env.svc.Reject(adminCtx, leave.RejectLeaveRequest{
		ID:              submitted.ID,
		RejectionReason: "short staffed",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "short staffed", *resp.RejectionReason)
}

func TestCancelOwnPendingOnly(t *testing.T) {
	env := newTestEnv()
	ownerCtx := authContext(t, "user-1", "emp-1", false)
	otherCtx := authContext(t, "user-2", "emp-2", false)

	submitted, err := env.svc.Submit(ownerCtx, leave.SubmitLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-12-10",
		ToDate:    "2025-12-10",
		NoOfDays:  "1",
		Reason:    "errand",
	})
	require.NoError(t, err)

	_, err = env.svc.Cancel(otherCtx, submitted.ID)
	assert.ErrorIs(t, err, leave.ErrUnauthorized)

	resp, err := env.svc.Cancel(ownerCtx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), resp.Status)

	_, err = env.svc.Cancel(ownerCtx, submitted.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestCalculateDaysWithHolidays(t *testing.T) {
	env := newTestEnv()
	ctx := authContext(t, "user-1", "emp-1", false)

	env.holiday.holidays = []holiday.Holiday{
		{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Name: "Christmas", IsActive: true},
		{Date: time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC), Name: "Inactive", IsActive: false},
	}

	// Mon Dec 22 .. Sun Dec 28: weekend 2, holiday 1 (inactive skipped),
	// working 4.
	resp, err := env.svc.CalculateDays(ctx, leave.CalculateDaysRequest{
		StartDate: "2025-12-22",
		EndDate:   "2025-12-28",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.WorkingDays)
	assert.Equal(t, 1, resp.Holidays)
	assert.Equal(t, 2, resp.Weekends)
	assert.Len(t, resp.Days, 7)
}

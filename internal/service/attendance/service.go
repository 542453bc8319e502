package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/employee"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/database"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/validator"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	txm            database.TxManager
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	calculator     *Calculator
	now            func() time.Time
}

func NewAttendanceService(
	txm database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	calculator *Calculator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		txm:            txm,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		calculator:     calculator,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// employeeFromClaims resolves the caller's employee profile.
func (s *AttendanceServiceImpl) employeeFromClaims(ctx context.Context) (employee.Employee, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.Employee{}, employee.ErrNoEmployeeProfile
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNoEmployeeProfile
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func userIDFromClaims(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

func isAdminFromClaims(ctx context.Context) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return isAdmin
}

// resolveDate parses an optional request date, defaulting to today.
// Future dates are rejected.
func (s *AttendanceServiceImpl) resolveDate(raw string, today time.Time) (time.Time, error) {
	if raw == "" {
		return DateOnly(today), nil
	}
	date, err := time.Parse(attendance.DateLayout, raw)
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	if date.After(DateOnly(today)) {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date cannot be in the future",
		}}
	}
	return date, nil
}

func (s *AttendanceServiceImpl) holidaySet(ctx context.Context, start, end time.Time) (holiday.DateSet, error) {
	holidays, err := s.holidayRepo.GetActiveInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}
	return holiday.NewDateSet(holidays), nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := s.employeeFromClaims(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	userID := userIDFromClaims(ctx)

	now := s.now()
	date, err := s.resolveDate(req.Date, now)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	holidays, err := s.holidaySet(ctx, date, date)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	hours, scheduled := emp.ScheduleDefaults(attendance.DefaultWorkingHours, attendance.DefaultScheduledSeconds)

	var rec attendance.Attendance
	err = s.txm.WithTransaction(ctx, func(txCtx context.Context) error {

		existing, err := s.attendanceRepo.GetForUpdate(txCtx, emp.ID, date)
		if err != nil {
			return fmt.Errorf("failed to lock attendance row: %w", err)
		}

		if existing != nil && existing.InTime != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		if existing != nil {
			existing.InTime = &now
			existing.DayText = req.Notes
			existing.UpdatedBy = &userID
			s.calculator.Recompute(existing, emp.JoiningDate, holidays, now)
			if err := s.attendanceRepo.Update(txCtx, *existing); err != nil {
				return fmt.Errorf("failed to update attendance: %w", err)
			}
			rec = *existing
			return nil
		}

		newRec := attendance.Attendance{
			EmployeeID:         emp.ID,
			Date:               date,
			InTime:             &now,
			OfficeWorkingHours: hours,
			ScheduledSeconds:   scheduled,
			DayText:            req.Notes,
			CreatedBy:          &userID,
			UpdatedBy:          &userID,
		}
		s.calculator.Recompute(&newRec, emp.JoiningDate, holidays, now)

		created, err := s.attendanceRepo.Create(txCtx, newRec)
		if err != nil {
			if postgresql.IsUniqueViolation(err) {
				return attendance.ErrAlreadyCheckedIn
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		rec = created
		return nil
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		AttendanceID: rec.ID,
		CheckInTime:  attendance.FormatTime12Hr(rec.InTime),
		Date:         rec.Date.Format(attendance.DateLayout),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := s.employeeFromClaims(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	userID := userIDFromClaims(ctx)

	now := s.now()
	date, err := s.resolveDate(req.Date, now)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	holidays, err := s.holidaySet(ctx, date, date)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	var rec attendance.Attendance
	err = s.txm.WithTransaction(ctx, func(txCtx context.Context) error {

		existing, err := s.attendanceRepo.GetForUpdate(txCtx, emp.ID, date)
		if err != nil {
			return fmt.Errorf("failed to lock attendance row: %w", err)
		}

		if existing == nil {
			return attendance.ErrNoCheckIn
		}
		if existing.OutTime != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		existing.OutTime = &now
		if req.Notes != "" {
			existing.Text = req.Notes
		}
		existing.UpdatedBy = &userID
		s.calculator.Recompute(existing, emp.JoiningDate, holidays, now)

		if err := s.attendanceRepo.Update(txCtx, *existing); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		rec = *existing
		return nil
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		AttendanceID:    rec.ID,
		CheckInTime:     attendance.FormatTime12Hr(rec.InTime),
		CheckOutTime:    attendance.FormatTime12Hr(rec.OutTime),
		TotalTime:       attendance.FormatSecondsToTime(rec.WorkedSeconds),
		ExtraTime:       attendance.FormatSecondsToTime(rec.ExtraSeconds),
		ExtraTimeStatus: rec.ExtraTimeStatus,
		Date:            rec.Date.Format(attendance.DateLayout),
	}, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (attendance.TodayResponse, error) {
	emp, err := s.employeeFromClaims(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	today := DateOnly(s.now())
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if rec == nil {
		return attendance.TodayResponse{
			Message:     "No attendance record for today",
			Date:        today.Format(attendance.DateLayout),
			HasCheckIn:  false,
			HasCheckOut: false,
		}, nil
	}

	resp := toAttendanceResponse(*rec)
	return attendance.TodayResponse{
		Date:        today.Format(attendance.DateLayout),
		HasCheckIn:  rec.HasCheckIn(),
		HasCheckOut: rec.HasCheckOut(),
		Attendance:  &resp,
	}, nil
}

// MyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	emp, err := s.employeeFromClaims(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.GetMyAttendance(ctx, emp.ID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.ListAttendanceResponse{
		Attendances: toAttendanceResponses(records),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.ListAttendanceResponse{
		Attendances: toAttendanceResponses(records),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return toAttendanceResponse(rec), nil
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse(attendance.DateLayout, req.Date)
	userID := userIDFromClaims(ctx)

	holidays, err := s.holidaySet(ctx, date, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	hours, scheduled := emp.ScheduleDefaults(attendance.DefaultWorkingHours, attendance.DefaultScheduledSeconds)
	if req.OfficeWorkingHours != nil {
		hours = *req.OfficeWorkingHours
	}
	if req.ScheduledSeconds != nil {
		scheduled = *req.ScheduledSeconds
	}

	rec := attendance.Attendance{
		EmployeeID:         emp.ID,
		Date:               date,
		InTime:             parseTimePtr(req.InTime),
		OutTime:            parseTimePtr(req.OutTime),
		OfficeWorkingHours: hours,
		ScheduledSeconds:   scheduled,
		CreatedBy:          &userID,
		UpdatedBy:          &userID,
	}
	if req.DayText != nil {
		rec.DayText = *req.DayText
	}
	if req.Text != nil {
		rec.Text = *req.Text
	}

	var created attendance.Attendance
	err = s.txm.WithTransaction(ctx, func(txCtx context.Context) error {

		s.calculator.Recompute(&rec, emp.JoiningDate, holidays, s.now())

		out, err := s.attendanceRepo.Create(txCtx, rec)
		if err != nil {
			if postgresql.IsUniqueViolation(err) {
				return attendance.ErrAttendanceExists
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		created = out
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID := userIDFromClaims(ctx)

	var updated attendance.Attendance
	err := s.txm.WithTransaction(ctx, func(txCtx context.Context) error {

		rec, err := s.attendanceRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrAttendanceNotFound
			}
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		if req.Date != nil {
			date, _ := time.Parse(attendance.DateLayout, *req.Date)
			rec.Date = date
		}
		if req.InTime != nil {
			rec.InTime = parseTimePtr(req.InTime)
		}
		if req.ClearInTime {
			rec.InTime = nil
		}
		if req.OutTime != nil {
			rec.OutTime = parseTimePtr(req.OutTime)
		}
		if req.ClearOutTime {
			rec.OutTime = nil
		}
		if req.OfficeWorkingHours != nil {
			rec.OfficeWorkingHours = *req.OfficeWorkingHours
		}
		if req.ScheduledSeconds != nil {
			rec.ScheduledSeconds = *req.ScheduledSeconds
		}
		if req.DayText != nil {
			rec.DayText = *req.DayText
		}
		if req.Text != nil {
			rec.Text = *req.Text
		}
		rec.UpdatedBy = &userID

		if rec.InTime != nil && rec.OutTime != nil && rec.OutTime.Before(*rec.InTime) {
			return validator.ValidationErrors{{
				Field:   "out_time",
				Message: "out_time cannot be before in_time",
			}}
		}

		emp, err := s.employeeRepo.GetByID(txCtx, rec.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		holidays, err := s.holidaySet(txCtx, rec.Date, rec.Date)
		if err != nil {
			return err
		}

		s.calculator.Recompute(&rec, emp.JoiningDate, holidays, s.now())

		if err := s.attendanceRepo.Update(txCtx, rec); err != nil {
			if postgresql.IsUniqueViolation(err) {
				return attendance.ErrAttendanceExists
			}
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.attendanceRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// MonthlyView implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyView(ctx context.Context, req attendance.MonthlyViewRequest) (attendance.MonthlyViewResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyViewResponse{}, err
	}

	var emp employee.Employee
	var err error
	if req.UserID != "" {
		if !isAdminFromClaims(ctx) {
			// Non-admins may only request themselves.
			self, selfErr := s.employeeFromClaims(ctx)
			if selfErr != nil {
				return attendance.MonthlyViewResponse{}, selfErr
			}
			if self.ID != req.UserID {
				return attendance.MonthlyViewResponse{}, attendance.ErrUnauthorized
			}
			emp = self
		} else {
			emp, err = s.employeeRepo.GetByID(ctx, req.UserID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return attendance.MonthlyViewResponse{}, employee.ErrEmployeeNotFound
				}
				return attendance.MonthlyViewResponse{}, fmt.Errorf("failed to get employee: %w", err)
			}
		}
	} else {
		emp, err = s.employeeFromClaims(ctx)
		if err != nil {
			return attendance.MonthlyViewResponse{}, err
		}
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, emp.ID, start, end)
	if err != nil {
		return attendance.MonthlyViewResponse{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	holidays, err := s.holidaySet(ctx, start, end)
	if err != nil {
		return attendance.MonthlyViewResponse{}, err
	}

	hours, scheduled := emp.ScheduleDefaults(attendance.DefaultWorkingHours, attendance.DefaultScheduledSeconds)

	return s.calculator.BuildMonthlyView(MonthlyInput{
		Employee:         emp,
		Month:            req.Month,
		Year:             req.Year,
		Records:          records,
		Holidays:         holidays,
		Today:            s.now(),
		DefaultHours:     hours,
		DefaultScheduled: scheduled,
	}), nil
}

func parseTimePtr(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, *raw)
		if err != nil {
			return nil
		}
	}
	return &t
}

func toAttendanceResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		FullDate:           rec.Date.Format(attendance.DateLayout),
		DateStr:            rec.Date.Format("02"),
		Day:                rec.Date.Format(attendance.DayNameLayout),
		InTime:             attendance.FormatDateTimeISO(rec.InTime),
		OutTime:            attendance.FormatDateTimeISO(rec.OutTime),
		OfficeWorkingHours: rec.OfficeWorkingHours,
		ScheduledSeconds:   rec.ScheduledSeconds,
		WorkedSeconds:      rec.WorkedSeconds,
		ExtraSeconds:       rec.ExtraSeconds,
		TotalTime:          attendance.FormatSecondsToTime(rec.WorkedSeconds),
		ExtraTime:          attendance.FormatSecondsToTime(rec.ExtraSeconds),
		DayType:            rec.DayType,
		ExtraTimeStatus:    rec.ExtraTimeStatus,
		AdminAlertMessage:  rec.AdminAlertMessage,
		DayText:            rec.DayText,
		Text:               rec.Text,
		CreatedAt:          rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          rec.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if rec.AdminAlert {
		resp.AdminAlert = 1
	}
	if rec.EmployeeName != nil {
		detail := attendance.EmployeeDetail{
			ID:       rec.EmployeeID,
			FullName: *rec.EmployeeName,
		}
		if rec.EmployeeDesignation != nil {
			detail.Designation = *rec.EmployeeDesignation
		}
		resp.Employee = &detail
	}
	return resp
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toAttendanceResponse(rec))
	}
	return out
}

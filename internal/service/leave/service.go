package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/employee"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/leave"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/database"
	attendancesvc "github.com/CoffeeAndCommit/backend-hrmsapp/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type LeaveServiceImpl struct {
	txm            database.TxManager
	leaveRepo      leave.LeaveRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	counter        *DayCounter
	now            func() time.Time
}

func NewLeaveService(
	txm database.TxManager,
	leaveRepo leave.LeaveRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	counter *DayCounter,
) leave.LeaveService {
	return &LeaveServiceImpl{
		txm:            txm,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		counter:        counter,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *LeaveServiceImpl) employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrNoEmployeeProfile
	}
	return employeeID, nil
}

func isAdminFromClaims(ctx context.Context) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return isAdmin
}

// CalculateDays implements leave.LeaveService.
func (s *LeaveServiceImpl) CalculateDays(ctx context.Context, req leave.CalculateDaysRequest) (leave.CalculateDaysResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CalculateDaysResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	holidays, err := s.holidayRepo.GetActiveInRange(ctx, start, end)
	if err != nil {
		return leave.CalculateDaysResponse{}, fmt.Errorf("failed to get holidays: %w", err)
	}

	return s.counter.Count(start, end, holiday.NewDateSet(holidays)), nil
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := s.employeeIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	from, _ := time.Parse(dateLayout, req.FromDate)
	to, _ := time.Parse(dateLayout, req.ToDate)
	noOfDays, _ := decimal.NewFromString(req.NoOfDays)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		FromDate:   from,
		ToDate:     to,
		NoOfDays:   noOfDays,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		DayStatus:  req.DayStatus,
		LateReason: req.LateReason,
		DocLink:    req.DocLink,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toLeaveResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	employeeID, err := s.employeeIDFromClaims(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, total, err := s.leaveRepo.GetByEmployee(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.ListLeaveResponse{
		Leaves: toLeaveResponses(leaves),
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	req, err := s.getLeave(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// Owners and admins only.
	if !isAdminFromClaims(ctx) {
		employeeID, err := s.employeeIDFromClaims(ctx)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		if req.EmployeeID != employeeID {
			return leave.LeaveResponse{}, leave.ErrUnauthorized
		}
	}

	return toLeaveResponse(req), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.ListLeaveResponse{
		Leaves: toLeaveResponses(leaves),
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, nil
}

// Approve implements leave.LeaveService. Approval stamps LEAVE_DAY onto
// the attendance records of the range so the classifier and monthly
// view treat those days as leave from then on.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	var approved leave.LeaveRequest
	err := s.txm.WithTransaction(ctx, func(txCtx context.Context) error {
		req, err := s.getLeave(txCtx, id)
		if err != nil {
			return err
		}
		if !req.IsPending() {
			return leave.ErrLeaveAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.StatusApproved, nil); err != nil {
			return fmt.Errorf("failed to approve leave request: %w", err)
		}

		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		if err := s.stampLeaveDays(txCtx, emp, req); err != nil {
			return err
		}

		req.Status = leave.StatusApproved
		approved = req
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(approved), nil
}

// stampLeaveDays creates or updates one attendance record per leave
// date. Weekends and holidays are skipped, they are already off days.
func (s *LeaveServiceImpl) stampLeaveDays(ctx context.Context, emp employee.Employee, req leave.LeaveRequest) error {
	holidays, err := s.holidayRepo.GetActiveInRange(ctx, req.FromDate, req.ToDate)
	if err != nil {
		return fmt.Errorf("failed to get holidays: %w", err)
	}
	holidaySet := holiday.NewDateSet(holidays)

	hours, scheduled := emp.ScheduleDefaults(attendance.DefaultWorkingHours, attendance.DefaultScheduledSeconds)

	for date := req.FromDate; !date.After(req.ToDate); date = date.AddDate(0, 0, 1) {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if holidaySet.Contains(date) {
			continue
		}

		existing, err := s.attendanceRepo.GetForUpdate(ctx, emp.ID, date)
		if err != nil {
			return fmt.Errorf("failed to lock attendance row: %w", err)
		}

		if existing != nil {
			existing.DayType = attendance.DayTypeLeaveDay
			existing.DayText = string(req.LeaveType)
			existing.AdminAlert = false
			existing.AdminAlertMessage = ""
			if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
				return fmt.Errorf("failed to stamp leave day: %w", err)
			}
			continue
		}

		_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID:         emp.ID,
			Date:               attendancesvc.DateOnly(date),
			OfficeWorkingHours: hours,
			ScheduledSeconds:   scheduled,
			DayType:            attendance.DayTypeLeaveDay,
			DayText:            string(req.LeaveType),
		})
		if err != nil {
			return fmt.Errorf("failed to create leave day record: %w", err)
		}
	}

	return nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var rejected leave.LeaveRequest
	err := s.txm.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.getLeave(txCtx, req.ID)
		if err != nil {
			return err
		}
		if !current.IsPending() {
			return leave.ErrLeaveAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, req.ID, leave.StatusRejected, &req.RejectionReason); err != nil {
			return fmt.Errorf("failed to reject leave request: %w", err)
		}

		current.Status = leave.StatusRejected
		current.RejectionReason = &req.RejectionReason
		rejected = current
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(rejected), nil
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) (leave.LeaveResponse, error) {
	employeeID, err := s.employeeIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var cancelled leave.LeaveRequest
	err = s.txm.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.getLeave(txCtx, id)
		if err != nil {
			return err
		}
		if current.EmployeeID != employeeID {
			return leave.ErrUnauthorized
		}
		if !current.IsPending() {
			return leave.ErrLeaveAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.StatusCancelled, nil); err != nil {
			return fmt.Errorf("failed to cancel leave request: %w", err)
		}

		current.Status = leave.StatusCancelled
		cancelled = current
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(cancelled), nil
}

func (s *LeaveServiceImpl) getLeave(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

func toLeaveResponse(req leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		LeaveType:       string(req.LeaveType),
		FromDate:        req.FromDate.Format(dateLayout),
		ToDate:          req.ToDate.Format(dateLayout),
		NoOfDays:        req.NoOfDays.String(),
		Reason:          req.Reason,
		Status:          string(req.Status),
		DayStatus:       req.DayStatus,
		LateReason:      req.LateReason,
		RejectionReason: req.RejectionReason,
		DocLink:         req.DocLink,
		CreatedAt:       req.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       req.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	return resp
}

func toLeaveResponses(reqs []leave.LeaveRequest) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, toLeaveResponse(req))
	}
	return out
}

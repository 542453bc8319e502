package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/leave"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.from_date, l.to_date, l.no_of_days,
	l.reason, l.status, l.day_status, l.late_reason, l.rejection_reason,
	l.doc_link, l.created_at, l.updated_at, e.full_name
`

func scanLeave(row interface{ Scan(...any) error }) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.LeaveType,
		&req.FromDate,
		&req.ToDate,
		&req.NoOfDays,
		&req.Reason,
		&req.Status,
		&req.DayStatus,
		&req.LateReason,
		&req.RejectionReason,
		&req.DocLink,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, from_date, to_date, no_of_days,
			reason, status, day_status, late_reason, doc_link
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveType,
		req.FromDate,
		req.ToDate,
		req.NoOfDays,
		req.Reason,
		req.Status,
		req.DayStatus,
		req.LateReason,
		req.DocLink,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// GetByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	scoped := filter
	scoped.EmployeeID = &employeeID
	return r.List(ctx, scoped)
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argc := 0

	next := func(v any) string {
		argc++
		args = append(args, v)
		return fmt.Sprintf("$%d", argc)
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, "l.employee_id = "+next(*filter.EmployeeID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "l.status = "+next(*filter.Status))
	}
	if filter.LeaveType != nil {
		conditions = append(conditions, "l.leave_type = "+next(*filter.LeaveType))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + where + `
		ORDER BY l.created_at DESC
		LIMIT ` + next(filter.Limit) + ` OFFSET ` + next((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, status, rejectionReason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/attendance"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.in_time, a.out_time,
	a.office_working_hours, a.scheduled_seconds, a.worked_seconds, a.extra_seconds,
	a.extra_time_status, a.day_type, a.admin_alert, a.admin_alert_message,
	a.day_text, a.text, a.is_day_before_joining,
	a.created_by, a.updated_by, a.created_at, a.updated_at
`

const attendanceJoinedColumns = attendanceColumns + `, e.full_name, e.designation`

func scanAttendance(row interface{ Scan(...any) error }) (attendance.Attendance, error) {
	var rec attendance.Attendance
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.InTime,
		&rec.OutTime,
		&rec.OfficeWorkingHours,
		&rec.ScheduledSeconds,
		&rec.WorkedSeconds,
		&rec.ExtraSeconds,
		&rec.ExtraTimeStatus,
		&rec.DayType,
		&rec.AdminAlert,
		&rec.AdminAlertMessage,
		&rec.DayText,
		&rec.Text,
		&rec.IsDayBeforeJoining,
		&rec.CreatedBy,
		&rec.UpdatedBy,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return rec, nil
}

func scanAttendanceJoined(row interface{ Scan(...any) error }) (attendance.Attendance, error) {
	var rec attendance.Attendance
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.InTime,
		&rec.OutTime,
		&rec.OfficeWorkingHours,
		&rec.ScheduledSeconds,
		&rec.WorkedSeconds,
		&rec.ExtraSeconds,
		&rec.ExtraTimeStatus,
		&rec.DayType,
		&rec.AdminAlert,
		&rec.AdminAlertMessage,
		&rec.DayText,
		&rec.Text,
		&rec.IsDayBeforeJoining,
		&rec.CreatedBy,
		&rec.UpdatedBy,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.EmployeeDesignation,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, in_time, out_time,
			office_working_hours, scheduled_seconds, worked_seconds, extra_seconds,
			extra_time_status, day_type, admin_alert, admin_alert_message,
			day_text, text, is_day_before_joining, created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.InTime,
		rec.OutTime,
		rec.OfficeWorkingHours,
		rec.ScheduledSeconds,
		rec.WorkedSeconds,
		rec.ExtraSeconds,
		rec.ExtraTimeStatus,
		rec.DayType,
		rec.AdminAlert,
		rec.AdminAlertMessage,
		rec.DayText,
		rec.Text,
		rec.IsDayBeforeJoining,
		rec.CreatedBy,
		rec.UpdatedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	rec, err := scanAttendanceJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetForUpdate implements attendance.AttendanceRepository. Must run
// inside a transaction; the row lock is released on commit or rollback.
func (r *attendanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
		FOR UPDATE
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET date = $1, in_time = $2, out_time = $3,
			office_working_hours = $4, scheduled_seconds = $5,
			worked_seconds = $6, extra_seconds = $7, extra_time_status = $8,
			day_type = $9, admin_alert = $10, admin_alert_message = $11,
			day_text = $12, text = $13, is_day_before_joining = $14,
			updated_by = $15, updated_at = NOW()
		WHERE id = $16
	`

	tag, err := q.Exec(ctx, query,
		rec.Date,
		rec.InTime,
		rec.OutTime,
		rec.OfficeWorkingHours,
		rec.ScheduledSeconds,
		rec.WorkedSeconds,
		rec.ExtraSeconds,
		rec.ExtraTimeStatus,
		rec.DayType,
		rec.AdminAlert,
		rec.AdminAlertMessage,
		rec.DayText,
		rec.Text,
		rec.IsDayBeforeJoining,
		rec.UpdatedBy,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
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
		conditions = append(conditions, "a.employee_id = "+next(*filter.EmployeeID))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "a.date >= "+next(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "a.date <= "+next(*filter.EndDate))
	}
	if filter.DayType != nil {
		conditions = append(conditions, "a.day_type = "+next(*filter.DayType))
	}
	if filter.AdminAlert != nil {
		conditions = append(conditions, "a.admin_alert = "+next(*filter.AdminAlert))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, e.full_name
		LIMIT ` + next(filter.Limit) + ` OFFSET ` + next((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendanceJoined(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// GetByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.employee_id = $1"}
	args := []any{employeeID}
	argc := 1

	next := func(v any) string {
		argc++
		args = append(args, v)
		return fmt.Sprintf("$%d", argc)
	}

	if filter.StartDate != nil {
		conditions = append(conditions, "a.date >= "+next(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "a.date <= "+next(*filter.EndDate))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE ` + where + `
		ORDER BY a.date DESC
		LIMIT ` + next(filter.Limit) + ` OFFSET ` + next((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on
	// a specific date. Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetForUpdate is GetByEmployeeAndDate with a row lock; must run
	// inside a transaction. Used to serialize check-in/check-out per
	// (employee, date).
	GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update replaces all mutable fields of an existing record.
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetByEmployeeAndRange retrieves an employee's records in [start, end],
	// ordered by date.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// GetMyAttendance retrieves paginated records for a specific employee
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}

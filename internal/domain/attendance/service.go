package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records an in punch for the authenticated employee
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut records an out punch for the authenticated employee
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// Today returns today's record for the authenticated employee, or a
	// placeholder when no record exists yet
	Today(ctx context.Context) (TodayResponse, error)

	// MyAttendance retrieves the authenticated employee's history
	MyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// List retrieves attendance records with filters (admin)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Get retrieves a single attendance record by ID
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// Create creates an attendance record directly (admin)
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// Update edits an attendance record (admin); recomputes derived fields
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// Delete removes an attendance record (admin)
	Delete(ctx context.Context, id string) error

	// MonthlyView reconstructs a full calendar month for an employee
	MonthlyView(ctx context.Context, req MonthlyViewRequest) (MonthlyViewResponse, error)
}

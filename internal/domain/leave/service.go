package leave

import (
	"context"
)

type LeaveService interface {
	// CalculateDays classifies an inclusive date range into working,
	// weekend and holiday buckets
	CalculateDays(ctx context.Context, req CalculateDaysRequest) (CalculateDaysResponse, error)

	// Submit creates a pending leave request for the authenticated employee
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)

	// ListMine lists the authenticated employee's leave requests
	ListMine(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// Get retrieves a single leave request
	Get(ctx context.Context, id string) (LeaveResponse, error)

	// List lists leave requests across employees (admin)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// Approve marks a pending request Approved and stamps leave days onto
	// the attendance records of the range (admin)
	Approve(ctx context.Context, id string) (LeaveResponse, error)

	// Reject marks a pending request Rejected with a reason (admin)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)

	// Cancel withdraws the caller's own pending request
	Cancel(ctx context.Context, id string) (LeaveResponse, error)
}

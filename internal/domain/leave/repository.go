package leave

import (
	"context"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployee(ctx context.Context, employeeID string, filter LeaveFilter) ([]LeaveRequest, int64, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error
}

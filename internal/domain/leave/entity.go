package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypeCasual    LeaveType = "Casual Leave"
	LeaveTypeSick      LeaveType = "Sick Leave"
	LeaveTypeEarned    LeaveType = "Earned Leave"
	LeaveTypeUnpaid    LeaveType = "Unpaid Leave"
	LeaveTypeMaternity LeaveType = "Maternity Leave"
	LeaveTypePaternity LeaveType = "Paternity Leave"
	LeaveTypeOther     LeaveType = "Other"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

func LeaveTypes() []string {
	return []string{
		string(LeaveTypeCasual), string(LeaveTypeSick), string(LeaveTypeEarned),
		string(LeaveTypeUnpaid), string(LeaveTypeMaternity),
		string(LeaveTypePaternity), string(LeaveTypeOther),
	}
}

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveType       LeaveType
	FromDate        time.Time
	ToDate          time.Time
	NoOfDays        decimal.Decimal
	Reason          string
	Status          Status
	DayStatus       *string // e.g. "First Half", "Second Half"
	LateReason      *string
	RejectionReason *string
	DocLink         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	EmployeeName *string
}

// IsPending reports whether the request is still awaiting review.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

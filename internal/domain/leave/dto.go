package leave

import (
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// DAY COUNT DTOs
// ========================================

type CalculateDaysRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CalculateDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if start, ok := validator.IsValidDate(r.StartDate); ok {
		if end, ok := validator.IsValidDate(r.EndDate); ok && start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date cannot be after end_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayDetail struct {
	Type       string `json:"type"` // working, weekend, holiday
	SubType    string `json:"sub_type"`
	SubSubType string `json:"sub_sub_type"`
	FullDate   string `json:"full_date"`
}

type CalculateDaysResponse struct {
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	WorkingDays int         `json:"working_days"`
	Holidays    int         `json:"holidays"`
	Weekends    int         `json:"weekends"`
	Days        []DayDetail `json:"days"`
	Message     string      `json:"message"`
}

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type SubmitLeaveRequest struct {
	LeaveType  string  `json:"leave_type"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	NoOfDays   string  `json:"no_of_days"` // decimal, half days allowed
	Reason     string  `json:"reason"`
	DayStatus  *string `json:"day_status"`
	LateReason *string `json:"late_reason"`
	DocLink    *string `json:"doc_link"`

	// From JWT
	EmployeeID string `json:"-"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, LeaveTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is not a recognized leave type",
		})
	}

	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if from, ok := validator.IsValidDate(r.FromDate); ok {
		if to, ok := validator.IsValidDate(r.ToDate); ok && from.After(to) {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date cannot be after to_date",
			})
		}
	}

	if validator.IsEmpty(r.NoOfDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "no_of_days",
			Message: "no_of_days is required",
		})
	} else if d, err := decimal.NewFromString(r.NoOfDays); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "no_of_days",
			Message: "no_of_days must be a decimal number",
		})
	} else if d.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "no_of_days",
			Message: "no_of_days must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	ID              string `json:"-"` // From URL
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	LeaveType  *string `json:"leave_type,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if f.Status != nil {
		valid := []string{
			string(StatusPending), string(StatusApproved),
			string(StatusRejected), string(StatusCancelled),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of Pending, Approved, Rejected, Cancelled",
			})
		}
	}

	if f.LeaveType != nil && !validator.IsInSlice(*f.LeaveType, LeaveTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is not a recognized leave type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	LeaveType       string  `json:"leave_type"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	NoOfDays        string  `json:"no_of_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	DayStatus       *string `json:"day_status,omitempty"`
	LateReason      *string `json:"late_reason,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	DocLink         *string `json:"doc_link,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ListLeaveResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

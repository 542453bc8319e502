package attendance

import (
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CheckInRequest struct {
	Date  string `json:"date"` // YYYY-MM-DD, defaults to today
	Notes string `json:"notes"`

	// From JWT
	EmployeeID string `json:"-"`
	UserID     string `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Date  string `json:"date"` // YYYY-MM-DD, defaults to today
	Notes string `json:"notes"`

	// From JWT
	EmployeeID string `json:"-"`
	UserID     string `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	AttendanceID string `json:"attendance_id"`
	CheckInTime  string `json:"check_in_time"` // hh:mm AM/PM
	Date         string `json:"date"`
}

type CheckOutResponse struct {
	AttendanceID    string `json:"attendance_id"`
	CheckInTime     string `json:"check_in_time"`
	CheckOutTime    string `json:"check_out_time"`
	TotalTime       string `json:"total_time"`
	ExtraTime       string `json:"extra_time"`
	ExtraTimeStatus string `json:"extra_time_status"`
	Date            string `json:"date"`
}

// ========================================
// RECORD DTOs
// ========================================

type AttendanceResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	FullDate           string          `json:"full_date"` // YYYY-MM-DD
	DateStr            string          `json:"date_str"`  // day number
	Day                string          `json:"day"`       // day name
	InTime             string          `json:"in_time"`   // ISO, "" when missing
	OutTime            string          `json:"out_time"`
	OfficeWorkingHours string          `json:"office_working_hours"`
	ScheduledSeconds   int             `json:"scheduled_seconds"`
	WorkedSeconds      int             `json:"worked_seconds"`
	ExtraSeconds       int             `json:"extra_seconds"`
	TotalTime          string          `json:"total_time"` // formatted
	ExtraTime          string          `json:"extra_time"`
	DayType            DayType         `json:"day_type"`
	ExtraTimeStatus    string          `json:"extra_time_status"`
	AdminAlert         int             `json:"admin_alert"`
	AdminAlertMessage  string          `json:"admin_alert_message"`
	DayText            string          `json:"day_text"`
	Text               string          `json:"text"`
	Employee           *EmployeeDetail `json:"employee_detail,omitempty"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

type EmployeeDetail struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Designation string `json:"designation"`
}

type TodayResponse struct {
	Message     string              `json:"message,omitempty"`
	Date        string              `json:"date"`
	HasCheckIn  bool                `json:"has_check_in"`
	HasCheckOut bool                `json:"has_check_out"`
	Attendance  *AttendanceResponse `json:"attendance,omitempty"`
}

// ========================================
// ADMIN DTOs
// ========================================

type CreateAttendanceRequest struct {
	EmployeeID         string  `json:"employee_id"`
	Date               string  `json:"date"`
	InTime             *string `json:"in_time"`  // RFC 3339
	OutTime            *string `json:"out_time"` // RFC 3339
	OfficeWorkingHours *string `json:"office_working_hours"`
	ScheduledSeconds   *int    `json:"scheduled_seconds"`
	DayText            *string `json:"day_text"`
	Text               *string `json:"text"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	var in, out *time.Time
	if r.InTime != nil {
		t, ok := validator.IsValidDateTime(*r.InTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "in_time",
				Message: "in_time must be an RFC 3339 timestamp",
			})
		} else {
			in = &t
		}
	}
	if r.OutTime != nil {
		t, ok := validator.IsValidDateTime(*r.OutTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "out_time",
				Message: "out_time must be an RFC 3339 timestamp",
			})
		} else {
			out = &t
		}
	}
	if in != nil && out != nil && out.Before(*in) {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time cannot be before in_time",
		})
	}

	if r.OfficeWorkingHours != nil && !validator.IsValidWorkingHoursLabel(*r.OfficeWorkingHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_working_hours",
			Message: "office_working_hours must be in HH:MM format",
		})
	}

	if r.ScheduledSeconds != nil && *r.ScheduledSeconds <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_seconds",
			Message: "scheduled_seconds must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID                 string  `json:"-"`    // From URL
	Date               *string `json:"date"` // YYYY-MM-DD
	InTime             *string `json:"in_time"`
	OutTime            *string `json:"out_time"`
	ClearInTime        bool    `json:"clear_in_time"`
	ClearOutTime       bool    `json:"clear_out_time"`
	OfficeWorkingHours *string `json:"office_working_hours"`
	ScheduledSeconds   *int    `json:"scheduled_seconds"`
	DayText            *string `json:"day_text"`
	Text               *string `json:"text"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	var in, out *time.Time
	if r.InTime != nil {
		t, ok := validator.IsValidDateTime(*r.InTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "in_time",
				Message: "in_time must be an RFC 3339 timestamp",
			})
		} else {
			in = &t
		}
	}
	if r.OutTime != nil {
		t, ok := validator.IsValidDateTime(*r.OutTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "out_time",
				Message: "out_time must be an RFC 3339 timestamp",
			})
		} else {
			out = &t
		}
	}
	if in != nil && out != nil && out.Before(*in) {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time cannot be before in_time",
		})
	}

	if r.InTime != nil && r.ClearInTime {
		errs = append(errs, validator.ValidationError{
			Field:   "in_time",
			Message: "in_time and clear_in_time are mutually exclusive",
		})
	}
	if r.OutTime != nil && r.ClearOutTime {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time and clear_out_time are mutually exclusive",
		})
	}

	if r.OfficeWorkingHours != nil && !validator.IsValidWorkingHoursLabel(*r.OfficeWorkingHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_working_hours",
			Message: "office_working_hours must be in HH:MM format",
		})
	}

	if r.ScheduledSeconds != nil && *r.ScheduledSeconds <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_seconds",
			Message: "scheduled_seconds must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// LIST / FILTER DTOs
// ========================================

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	DayType    *string `json:"day_type,omitempty"`
	AdminAlert *bool   `json:"admin_alert,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
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

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.DayType != nil {
		valid := []string{
			string(DayTypeWorkingDay), string(DayTypeWeekendOff),
			string(DayTypeHoliday), string(DayTypeHalfDay), string(DayTypeLeaveDay),
		}
		if !validator.IsInSlice(*f.DayType, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "day_type",
				Message: "day_type must be one of WORKING_DAY, WEEKEND_OFF, HOLIDAY, HALF_DAY, LEAVE_DAY",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
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
		f.Limit = 31
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

// ========================================
// MONTHLY VIEW DTOs
// ========================================

type MonthlyViewRequest struct {
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	UserID string `json:"userid"` // employee id; admin may pass any

	// From JWT
	RequesterUserID  string `json:"-"`
	RequesterIsAdmin bool   `json:"-"`
}

func (r *MonthlyViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 1900 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyDayRecord struct {
	Date               string  `json:"date"`
	Day                string  `json:"day"` // day name
	OfficeWorkingHours string  `json:"office_working_hours"`
	AdminAlert         int     `json:"admin_alert"`
	AdminAlertMessage  string  `json:"admin_alert_message"`
	DayText            string  `json:"day_text"`
	DayType            DayType `json:"day_type"`
	ExtraTime          string  `json:"extra_time"`
	ExtraTimeStatus    string  `json:"extra_time_status"`
	InTime             string  `json:"in_time"`
	OutTime            string  `json:"out_time"`
	ScheduledSeconds   int     `json:"scheduled_seconds"`
	WorkedSeconds      int     `json:"worked_seconds"`
	ExtraSeconds       int     `json:"extra_seconds"`
	Text               string  `json:"text"`
	TotalTime          string  `json:"total_time"`
}

type CompensationSummary struct {
	SecondsToBeCompensate int    `json:"seconds_to_be_compensate"`
	TimeToBeCompensate    string `json:"time_to_be_compensate"`
}

type MonthSummary struct {
	ActualWorkingHours    string `json:"actual_working_hours"`
	CompletedWorkingHours string `json:"completed_working_hours"`
}

type AdjacentMonth struct {
	Year      string `json:"year"`
	Month     string `json:"month"` // zero-padded
	MonthName string `json:"monthName"`
}

type MonthlyViewResponse struct {
	Attendance          []MonthlyDayRecord  `json:"attendance"`
	CompensationSummary CompensationSummary `json:"compensationSummary"`
	Message             string              `json:"message"`
	Month               int                 `json:"month"`
	MonthName           string              `json:"monthName"`
	MonthSummary        MonthSummary        `json:"monthSummary"`
	NextMonth           AdjacentMonth       `json:"nextMonth"`
	PreviousMonth       AdjacentMonth       `json:"previousMonth"`
	UserName            string              `json:"userName"`
	UserID              string              `json:"userid"`
	UserJobTitle        string              `json:"userjobtitle"`
	Year                int                 `json:"year"`
}

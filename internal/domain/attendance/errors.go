package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in for this date")
	ErrAlreadyCheckedOut = errors.New("you have already checked out for this date")
	ErrNoCheckIn         = errors.New("you have not checked in yet")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("an attendance record already exists for this date")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)

package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNotCheckedIn       = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut  = errors.New("you have already checked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrOpenBreakExists    = errors.New("another break is still open")
)

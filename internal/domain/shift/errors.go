package shift

import "errors"

var (
	ErrShiftNotFound       = errors.New("shift policy not found")
	ErrNoShiftConfigured   = errors.New("no shift policy configured for company")
	ErrWorkingDaysNotFound = errors.New("working days configuration not found")
)

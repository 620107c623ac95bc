package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ParseClock parses a wall-clock string. Accepts "15:04:05" and "15:04".
func ParseClock(clockStr string) (time.Time, bool) {
	t, err := time.Parse("15:04:05", clockStr)
	if err == nil {
		return t, true
	}
	t, err = time.Parse("15:04", clockStr)
	return t, err == nil
}

// IsValidMonthYear checks a payroll or report period.
func IsValidMonthYear(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000
}

package holiday

import "time"

// CalendarEvent is a company calendar entry. Only entries with IsHoliday set
// affect attendance aggregation and payroll.
type CalendarEvent struct {
	ID          string
	CompanyID   string
	Name        string
	Date        time.Time
	Description string
	IsHoliday   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package holiday

import (
	"context"
	"time"
)

type CalendarEventRepository interface {
	Create(ctx context.Context, event CalendarEvent) (CalendarEvent, error)
	ListByCompany(ctx context.Context, companyID string) ([]CalendarEvent, error)

	// ListHolidays returns holiday entries falling inside [from,to].
	ListHolidays(ctx context.Context, companyID string, from, to time.Time) ([]CalendarEvent, error)

	Delete(ctx context.Context, id string, companyID string) error
}

package holiday

import "context"

type CalendarService interface {
	CreateEvent(ctx context.Context, req *CreateCalendarEventRequest) (CalendarEventResponse, error)
	ListEvents(ctx context.Context) ([]CalendarEventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
}

package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type calendarEventRepositoryImpl struct {
	db *database.DB
}

func NewCalendarEventRepository(db *database.DB) holiday.CalendarEventRepository {
	return &calendarEventRepositoryImpl{db: db}
}

// Create implements holiday.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) Create(ctx context.Context, event holiday.CalendarEvent) (holiday.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_events (company_id, name, date, description, is_holiday)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, name, date, description, is_holiday, created_at, updated_at
	`

	var created holiday.CalendarEvent
	err := q.QueryRow(ctx, query,
		event.CompanyID, event.Name, event.Date, event.Description, event.IsHoliday,
	).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.Date,
		&created.Description, &created.IsHoliday, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return holiday.CalendarEvent{}, err
	}
	return created, nil
}

// ListByCompany implements holiday.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]holiday.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, date, description, is_holiday, created_at, updated_at
		FROM calendar_events
		WHERE company_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCalendarEvents(rows)
}

// ListHolidays implements holiday.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) ListHolidays(ctx context.Context, companyID string, from, to time.Time) ([]holiday.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, date, description, is_holiday, created_at, updated_at
		FROM calendar_events
		WHERE company_id = $1 AND is_holiday AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCalendarEvents(rows)
}

func collectCalendarEvents(rows pgx.Rows) ([]holiday.CalendarEvent, error) {
	var out []holiday.CalendarEvent
	for rows.Next() {
		var ev holiday.CalendarEvent
		if err := rows.Scan(
			&ev.ID, &ev.CompanyID, &ev.Name, &ev.Date,
			&ev.Description, &ev.IsHoliday, &ev.CreatedAt, &ev.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Delete implements holiday.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return holiday.ErrEventNotFound
	}
	return nil
}

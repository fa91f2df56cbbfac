package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"metzenhof/internal/entities"
)

// ReservationRepository keeps reservation events in PostgreSQL, for
// deployments without an Outlook calendar. The table plays the role of the
// calendar: one row per event, nothing else is stored.
type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) ListEvents(ctx context.Context, start, end time.Time) ([]entities.CalendarEvent, error) {
	query := `
		SELECT transaction_id, subject, location, categories, show_as, start_time, end_time
		FROM calendar_events
		WHERE start_time < $2 AND end_time > $1
		ORDER BY start_time, id`

	rows, err := r.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying calendar events: %w", err)
	}
	defer rows.Close()

	var events []entities.CalendarEvent
	for rows.Next() {
		var ev entities.CalendarEvent
		var categories pq.StringArray
		if err := rows.Scan(&ev.TransactionID, &ev.Subject, &ev.Location, &categories, &ev.ShowAs, &ev.Start, &ev.End); err != nil {
			return nil, fmt.Errorf("error scanning calendar event: %w", err)
		}
		ev.Categories = []string(categories)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating calendar events: %w", err)
	}
	return events, nil
}

// CreateEvent inserts the event. A repeated transaction id is ignored, so
// retrying the same booking does not create a second row.
func (r *ReservationRepository) CreateEvent(ctx context.Context, ev entities.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events
		(transaction_id, subject, body_html, location, categories, show_as, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (transaction_id) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query,
		ev.TransactionID,
		ev.Subject,
		ev.BodyHTML,
		ev.Location,
		pq.Array(ev.Categories),
		ev.ShowAs,
		ev.Start,
		ev.End,
	)
	if err != nil {
		return fmt.Errorf("error inserting calendar event: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"metzenhof/internal/entities"
	"metzenhof/internal/graph"
)

// GraphCalendarRepository stores reservations in the restaurant's Outlook
// calendar.
type GraphCalendarRepository struct {
	client   *graph.Client
	timeZone string
}

func NewGraphCalendarRepository(client *graph.Client, timeZone string) *GraphCalendarRepository {
	return &GraphCalendarRepository{client: client, timeZone: timeZone}
}

func (r *GraphCalendarRepository) ListEvents(ctx context.Context, start, end time.Time) ([]entities.CalendarEvent, error) {
	events, err := r.client.CalendarView(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CalendarEvent, 0, len(events))
	for _, ev := range events {
		ce := entities.CalendarEvent{
			TransactionID: ev.TransactionID,
			Subject:       ev.Subject,
			Categories:    ev.Categories,
			ShowAs:        ev.ShowAs,
		}
		if ev.Location != nil {
			ce.Location = ev.Location.DisplayName
		}
		if ce.Start, err = ev.Start.Time(); err != nil {
			return nil, fmt.Errorf("event %s start: %w", ev.ID, err)
		}
		if ce.End, err = ev.End.Time(); err != nil {
			return nil, fmt.Errorf("event %s end: %w", ev.ID, err)
		}
		out = append(out, ce)
	}
	return out, nil
}

func (r *GraphCalendarRepository) CreateEvent(ctx context.Context, ce entities.CalendarEvent) error {
	ev := graph.Event{
		TransactionID: ce.TransactionID,
		Subject:       ce.Subject,
		Body:          &graph.ItemBody{ContentType: "HTML", Content: ce.BodyHTML},
		Start:         graph.NewDateTimeTimeZone(ce.Start, r.timeZone),
		End:           graph.NewDateTimeTimeZone(ce.End, r.timeZone),
		Categories:    ce.Categories,
		ShowAs:        ce.ShowAs,
	}
	if ce.Location != "" {
		ev.Location = &graph.Location{DisplayName: ce.Location}
	}
	_, err := r.client.CreateEvent(ctx, ev)
	return err
}

package repository

import (
	"context"
	"time"

	"metzenhof/internal/entities"
)

// CalendarRepository is the store of reservation events. Events are never
// updated or deleted by this service.
type CalendarRepository interface {
	// ListEvents returns events overlapping [start, end).
	ListEvents(ctx context.Context, start, end time.Time) ([]entities.CalendarEvent, error)
	CreateEvent(ctx context.Context, ev entities.CalendarEvent) error
}

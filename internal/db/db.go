package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open connects to PostgreSQL and checks the connection.
func Open(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS calendar_events (
	id             BIGSERIAL PRIMARY KEY,
	transaction_id TEXT        NOT NULL UNIQUE,
	subject        TEXT        NOT NULL,
	body_html      TEXT        NOT NULL DEFAULT '',
	location       TEXT        NOT NULL DEFAULT '',
	categories     TEXT[]      NOT NULL DEFAULT '{}',
	show_as        TEXT        NOT NULL DEFAULT 'busy',
	start_time     TIMESTAMPTZ NOT NULL,
	end_time       TIMESTAMPTZ NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (end_time > start_time)
);
CREATE INDEX IF NOT EXISTS idx_calendar_events_range ON calendar_events (start_time, end_time);
`

// Migrate creates the calendar table when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

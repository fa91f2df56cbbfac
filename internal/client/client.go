// Package client talks to the booking API on behalf of the booking form.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"metzenhof/internal/entities"
)

type Client struct {
	hc      *http.Client
	baseURL string
}

// New returns a client for the API rooted at baseURL (for example
// "https://booking.metzenhof.at/api"). A nil hc gets a 10s timeout.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{hc: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("booking api http %d: %s", e.Status, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// AvailabilityResult is either a snapshot (Ok) or the reason the check
// could not be made (Unavailable).
type AvailabilityResult struct {
	Snapshot *entities.AvailabilitySnapshot
	Err      error
}

func (r AvailabilityResult) Ok() bool { return r.Err == nil && r.Snapshot != nil }

// BookedTables is empty when the check was unavailable, so callers proceed
// as if every table were free.
func (r AvailabilityResult) BookedTables() []string {
	if !r.Ok() {
		return nil
	}
	return r.Snapshot.BookedTables
}

// CheckAvailability asks which tables are taken at date/time. It never
// fails: transport, status and decode errors yield an Unavailable result
// and a warning in the log.
func (c *Client) CheckAvailability(ctx context.Context, date, clock string) AvailabilityResult {
	q := url.Values{"date": {date}, "time": {clock}}
	var snap entities.AvailabilitySnapshot
	if err := c.do(ctx, http.MethodGet, "/check-availability?"+q.Encode(), nil, &snap); err != nil {
		log.Warn().Err(err).Str("date", date).Str("time", clock).Msg("availability check unavailable, continuing without it")
		return AvailabilityResult{Err: err}
	}
	if snap.BookedTables == nil {
		snap.BookedTables = []string{}
	}
	return AvailabilityResult{Snapshot: &snap}
}

// CreateBooking posts the booking. Any error means the backend did not
// confirm it.
func (c *Client) CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error) {
	var resp entities.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/create-booking", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Slots(ctx context.Context, date string) (*entities.SlotsResponse, error) {
	var resp entities.SlotsResponse
	if err := c.do(ctx, http.MethodGet, "/slots?"+url.Values{"date": {date}}.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metzenhof/internal/entities"
	"metzenhof/internal/graph"
)

func TestGraphCalendarRepository_ListEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/wirtshaus@metzenhof.at/calendar/calendarView", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[{"id":"1","subject":"Reservierung R9 - A B (8 Pers.)",
			"location":{"displayName":"Tisch R9"},"categories":["Tischreservierung","R9"],"showAs":"busy",
			"start":{"dateTime":"2026-10-22T14:30:00.0000000","timeZone":"UTC"},
			"end":{"dateTime":"2026-10-22T17:30:00.0000000","timeZone":"UTC"}}]}`))
	}))
	defer srv.Close()

	repo := NewGraphCalendarRepository(graph.New(srv.Client(), srv.URL, "wirtshaus@metzenhof.at"), "Europe/Vienna")
	events, err := repo.ListEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Tisch R9", events[0].Location)
	assert.Equal(t, time.Date(2026, 10, 22, 14, 30, 0, 0, time.UTC), events[0].Start.UTC())
	assert.Equal(t, 3*time.Hour, events[0].End.Sub(events[0].Start))
}

func TestGraphCalendarRepository_CreateEvent(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"new"}`))
	}))
	defer srv.Close()

	vienna, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)
	start := time.Date(2026, 10, 22, 18, 0, 0, 0, vienna)

	repo := NewGraphCalendarRepository(graph.New(srv.Client(), srv.URL, "wirtshaus@metzenhof.at"), "Europe/Vienna")
	err = repo.CreateEvent(context.Background(), entities.CalendarEvent{
		TransactionID: "tx-1",
		Subject:       "Reservierung R1 - Anna Huber (4 Pers.)",
		BodyHTML:      "<p>x</p>",
		Location:      "Tisch R1",
		Categories:    []string{entities.CategoryReservation, "R1"},
		ShowAs:        entities.ShowAsBusy,
		Start:         start,
		End:           start.Add(3 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "tx-1", got["transactionId"])
	assert.Equal(t, "busy", got["showAs"])
	assert.Equal(t, map[string]any{"displayName": "Tisch R1"}, got["location"])
	assert.Equal(t, map[string]any{"dateTime": "2026-10-22T18:00:00", "timeZone": "Europe/Vienna"}, got["start"])
}

package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metzenhof/internal/entities"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.Client(), srv.URL+"/v1.0/", "wirtshaus@metzenhof.at")
}

func TestCalendarView_FollowsNextLink(t *testing.T) {
	var srvURL string
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v1.0/users/wirtshaus@metzenhof.at/calendar/calendarView", r.URL.Path)
		assert.Equal(t, `outlook.timezone="UTC"`, r.Header.Get("Prefer"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			assert.Equal(t, "2026-10-22T16:30:00Z", r.URL.Query().Get("startDateTime"))
			assert.Equal(t, "2026-10-22T19:30:00Z", r.URL.Query().Get("endDateTime"))
			fmt.Fprintf(w, `{"value":[{"subject":"Reservierung R1 - A B (2 Pers.)","start":{"dateTime":"2026-10-22T16:00:00.0000000","timeZone":"UTC"},"end":{"dateTime":"2026-10-22T19:00:00.0000000","timeZone":"UTC"}}],"@odata.nextLink":"%s/v1.0/users/wirtshaus@metzenhof.at/calendar/calendarView?page=2"}`, srvURL)
			return
		}
		fmt.Fprint(w, `{"value":[{"subject":"Team","categories":["R9"],"start":{"dateTime":"2026-10-22T17:00:00","timeZone":"UTC"},"end":{"dateTime":"2026-10-22T18:00:00","timeZone":"UTC"}}]}`)
	}))
	defer srv.Close()
	srvURL = srv.URL
	c := New(srv.Client(), srv.URL+"/v1.0", "wirtshaus@metzenhof.at")

	vienna, _ := time.LoadLocation("Europe/Vienna")
	start := time.Date(2026, 10, 22, 18, 30, 0, 0, vienna)
	events, err := c.CalendarView(context.Background(), start, start.Add(3*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, events, 2)
	assert.Equal(t, []string{"R9"}, events[1].Categories)

	got, err := events[0].Start.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 22, 16, 0, 0, 0, time.UTC)))
}

func TestCreateEvent_PostsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.0/users/wirtshaus@metzenhof.at/calendar/events", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var ev Event
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		assert.Equal(t, "busy", ev.ShowAs)
		assert.Equal(t, "Europe/Vienna", ev.Start.TimeZone)
		assert.Equal(t, "2026-10-22T18:30:00", ev.Start.DateTime)

		ev.ID = "AAMk123"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(ev)
	})

	vienna, _ := time.LoadLocation("Europe/Vienna")
	start := time.Date(2026, 10, 22, 18, 30, 0, 0, vienna)
	created, err := c.CreateEvent(context.Background(), Event{
		Subject: "Reservierung R1",
		Start:   NewDateTimeTimeZone(start, "Europe/Vienna"),
		End:     NewDateTimeTimeZone(start.Add(3*time.Hour), "Europe/Vienna"),
		ShowAs:  "busy",
	})

	require.NoError(t, err)
	assert.Equal(t, "AAMk123", created.ID)
}

func TestDo_ParsesGraphError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":"ErrorAccessDenied","message":"Access is denied."}}`)
	})

	_, err := c.CreateEvent(context.Background(), Event{Subject: "x"})

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusForbidden, gerr.Status)
	assert.Equal(t, "ErrorAccessDenied", gerr.Code)
}

func TestSend_BuildsSendMailPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.0/users/wirtshaus@metzenhof.at/sendMail", r.URL.Path)
		var body sendMailRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gast@example.at", body.Message.ToRecipients[0].EmailAddress.Address)
		assert.Equal(t, "HTML", body.Message.Body.ContentType)
		assert.True(t, body.SaveToSentItems)
		w.WriteHeader(http.StatusAccepted)
	})

	err := c.Send(context.Background(), entities.EmailMessage{
		ToAddress:       "gast@example.at",
		Subject:         "Reservierungsbestätigung",
		HTMLBody:        "<p>Hallo</p>",
		SaveToSentItems: true,
	})

	assert.NoError(t, err)
}

func TestDateTimeTimeZone_UnknownZoneIsUTC(t *testing.T) {
	d := DateTimeTimeZone{DateTime: "2026-10-22T10:00:00.0000000", TimeZone: "W. Europe Standard Time"}

	got, err := d.Time()

	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

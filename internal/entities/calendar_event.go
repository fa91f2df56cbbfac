package entities

import "time"

const (
	CategoryReservation = "Tischreservierung"
	ShowAsBusy          = "busy"
)

// CalendarEvent is a reservation as stored by the calendar provider. It is
// the only persisted record of a booking.
type CalendarEvent struct {
	TransactionID string
	Subject       string
	BodyHTML      string
	Location      string
	Categories    []string
	ShowAs        string
	Start         time.Time
	End           time.Time
}

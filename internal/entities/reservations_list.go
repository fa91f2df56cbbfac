package entities

import "time"

// ReservationSummary is one calendar reservation as shown to staff.
type ReservationSummary struct {
	Subject  string    `json:"subject"`
	Tables   []string  `json:"tables"`
	Location string    `json:"location,omitempty"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ReservationsList struct {
	Date         string               `json:"date"`
	Total        int                  `json:"total"`
	Reservations []ReservationSummary `json:"reservations"`
}

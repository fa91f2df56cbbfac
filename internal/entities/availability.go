package entities

// AvailabilitySnapshot lists the tables already taken for a reservation
// starting at Date/Time. It is fetched per booking attempt and never cached.
type AvailabilitySnapshot struct {
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	BookedTables []string `json:"bookedTables"`
}

type SlotsResponse struct {
	Date   string   `json:"date"`
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}

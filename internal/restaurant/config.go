package restaurant

import (
	"errors"
	"fmt"
	"time"
)

type Table struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
}

// Hours holds the opening and closing time of one day as "HH:MM".
type Hours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpeningHours maps a weekday to its hours. Missing weekdays are closed.
type OpeningHours map[time.Weekday]Hours

// Config is the static restaurant setup. It is built once at startup and
// passed by value; nothing mutates it afterwards.
type Config struct {
	Name                string
	Mailbox             string
	Tables              []Table
	OpeningHours        OpeningHours
	ReservationDuration int // hours
	BookingInterval     int // minutes
	BookingWindowMonths int
	TimeZone            string
}

// Metzenhof returns the configuration of Wirtshaus Metzenhof.
func Metzenhof() Config {
	return Config{
		Name:    "Wirtshaus Metzenhof",
		Mailbox: "wirtshaus@metzenhof.at",
		Tables: []Table{
			{ID: "R1", Capacity: 6},
			{ID: "R3", Capacity: 6},
			{ID: "R5", Capacity: 6},
			{ID: "R6", Capacity: 6},
			{ID: "R7", Capacity: 6},
			{ID: "R8", Capacity: 6},
			{ID: "R9", Capacity: 10},
			{ID: "R10", Capacity: 10},
			{ID: "R11", Capacity: 6},
		},
		OpeningHours: OpeningHours{
			time.Sunday:   {Open: "11:00", Close: "16:00"},
			time.Thursday: {Open: "11:00", Close: "20:00"},
			time.Friday:   {Open: "11:00", Close: "20:00"},
			time.Saturday: {Open: "11:00", Close: "20:00"},
		},
		ReservationDuration: 3,
		BookingInterval:     30,
		BookingWindowMonths: 2,
		TimeZone:            "Europe/Vienna",
	}
}

func (c Config) Validate() error {
	if len(c.Tables) == 0 {
		return errors.New("table catalog is empty")
	}
	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if t.ID == "" {
			return errors.New("table id must not be empty")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate table id %q", t.ID)
		}
		if t.Capacity <= 0 {
			return fmt.Errorf("table %s: capacity must be > 0", t.ID)
		}
		seen[t.ID] = true
	}
	for day, h := range c.OpeningHours {
		open, err := ParseClock(h.Open)
		if err != nil {
			return fmt.Errorf("%s open: %w", day, err)
		}
		closing, err := ParseClock(h.Close)
		if err != nil {
			return fmt.Errorf("%s close: %w", day, err)
		}
		if closing <= open {
			return fmt.Errorf("%s: close %s must be after open %s", day, h.Close, h.Open)
		}
	}
	if c.ReservationDuration <= 0 {
		return errors.New("reservation duration must be > 0")
	}
	if c.BookingInterval <= 0 {
		return errors.New("booking interval must be > 0")
	}
	return nil
}

// Table looks up a table by id.
func (c Config) Table(id string) (Table, bool) {
	for _, t := range c.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}

// Location returns the restaurant time zone, falling back to CET when the
// zone database is not available.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone("CET", 1*60*60)
	}
	return loc
}

// Duration is the length of one reservation.
func (c Config) Duration() time.Duration {
	return time.Duration(c.ReservationDuration) * time.Hour
}

// IsOpen reports whether the restaurant takes reservations on the given day.
func (c Config) IsOpen(day time.Weekday) bool {
	_, ok := c.OpeningHours[day]
	return ok
}

// Slots lists the bookable start times for a calendar date.
func (c Config) Slots(date time.Time) []string {
	return GenerateSlots(date.Weekday(), c.OpeningHours, c.ReservationDuration, c.BookingInterval)
}

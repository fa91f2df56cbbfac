package widget

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"metzenhof/internal/entities"
	"metzenhof/internal/restaurant"
	"metzenhof/internal/validation"
)

// Form is what the guest entered across the three form steps.
type Form struct {
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	Guests          int    `json:"guests" validate:"required,gt=0"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,basicemail"`
	Phone           string `json:"phone" validate:"required"`
	Notes           string `json:"notes"`
	PrivacyAccepted bool   `json:"privacy" validate:"required"`
}

func (f Form) bookingRequest(table string) entities.BookingRequest {
	return entities.BookingRequest{
		Date:      f.Date,
		Time:      f.Time,
		Guests:    f.Guests,
		Table:     table,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Notes:     f.Notes,
	}
}

// Validate checks the form against the restaurant's calendar. today is the
// current date in the restaurant's time zone.
func Validate(f Form, cfg restaurant.Config, today time.Time) error {
	if err := validation.Struct(f); err != nil {
		field, tag, _ := validation.First(err)
		switch {
		case field == "privacy":
			return &ValidationError{Field: field, Message: msgPrivacy}
		case field == "guests":
			return &ValidationError{Field: field, Message: msgGuests}
		case tag == "basicemail":
			return &ValidationError{Field: field, Message: msgEmail}
		default:
			return &ValidationError{Field: field, Message: msgRequired}
		}
	}

	loc := cfg.Location()
	day, err := time.ParseInLocation("2006-01-02", f.Date, loc)
	if err != nil {
		return &ValidationError{Field: "date", Message: msgDate}
	}
	first := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	if day.Before(first) {
		return &ValidationError{Field: "date", Message: msgPast}
	}
	if day.After(first.AddDate(0, cfg.BookingWindowMonths, 0)) {
		return &ValidationError{Field: "date", Message: fmt.Sprintf(msgWindow, cfg.BookingWindowMonths)}
	}
	if !cfg.IsOpen(day.Weekday()) {
		return &ValidationError{Field: "date", Message: msgClosed}
	}
	if !restaurant.IsSlot(f.Time, day.Weekday(), cfg.OpeningHours, cfg.ReservationDuration, cfg.BookingInterval) {
		return &ValidationError{Field: "time", Message: msgTime}
	}
	return nil
}

// Confirmation is what the confirmation view shows. Demo marks a code that
// was generated locally because the backend did not confirm the booking.
type Confirmation struct {
	Code   string
	Date   string
	Time   string
	Guests int
	Name   string
	Email  string
	Table  string
	Demo   bool
	// Cause is the backend failure behind a demo confirmation.
	Cause error
}

// RedirectURL appends the confirmation parameters to the confirmation page.
func (c Confirmation) RedirectURL(page string) string {
	q := url.Values{}
	q.Set("code", c.Code)
	q.Set("date", c.Date)
	q.Set("time", c.Time)
	q.Set("guests", strconv.Itoa(c.Guests))
	q.Set("name", c.Name)
	q.Set("email", c.Email)
	if c.Demo {
		q.Set("demo", "true")
	}
	return page + "?" + q.Encode()
}

package restaurant

import "time"

// GenerateSlots returns the reservation start times for a weekday as
// zero-padded "HH:MM" strings in increasing order.
//
// The last bookable start is close minus the reservation duration. Within
// that final hour only the full hour itself is offered, so a 20:30 close with
// a 3h duration ends at 17:00, not 17:30.
//
// Closed days, unparsable hours and a non-positive interval yield no slots.
func GenerateSlots(day time.Weekday, hours OpeningHours, durationHours, intervalMinutes int) []string {
	h, ok := hours[day]
	if !ok || intervalMinutes <= 0 {
		return []string{}
	}
	open, err := ParseClock(h.Open)
	if err != nil {
		return []string{}
	}
	closing, err := ParseClock(h.Close)
	if err != nil {
		return []string{}
	}

	last := closing - Clock(durationHours*60)
	slots := []string{}
	if last < open {
		return slots
	}

	hour, minute := open.Hour(), open.Minute()
	for bookable(hour, minute, last) {
		slots = append(slots, NewClock(hour, minute).String())

		minute += intervalMinutes
		hour += minute / 60
		minute %= 60
	}
	return slots
}

func bookable(hour, minute int, last Clock) bool {
	if hour < last.Hour() {
		return true
	}
	return hour == last.Hour() && minute == 0
}

// IsSlot reports whether t is one of the generated slots for the day.
func IsSlot(t string, day time.Weekday, hours OpeningHours, durationHours, intervalMinutes int) bool {
	for _, s := range GenerateSlots(day, hours, durationHours, intervalMinutes) {
		if s == t {
			return true
		}
	}
	return false
}

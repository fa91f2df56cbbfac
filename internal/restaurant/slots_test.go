package restaurant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_Thursday(t *testing.T) {
	cfg := Metzenhof()

	slots := GenerateSlots(time.Thursday, cfg.OpeningHours, 3, 30)

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.Len(t, slots, 13)
}

func TestGenerateSlots_Sunday(t *testing.T) {
	cfg := Metzenhof()

	slots := GenerateSlots(time.Sunday, cfg.OpeningHours, 3, 30)

	assert.Equal(t, []string{"11:00", "11:30", "12:00", "12:30", "13:00"}, slots)
}

func TestGenerateSlots_ClosedDays(t *testing.T) {
	cfg := Metzenhof()

	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday} {
		slots := GenerateSlots(day, cfg.OpeningHours, 3, 30)
		assert.NotNil(t, slots, day.String())
		assert.Empty(t, slots, day.String())
	}
}

func TestGenerateSlots_LastHourOnlyTopOfHour(t *testing.T) {
	hours := OpeningHours{time.Friday: {Open: "11:00", Close: "20:30"}}

	slots := GenerateSlots(time.Friday, hours, 3, 30)

	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:30")
}

func TestGenerateSlots_OffHourOpening(t *testing.T) {
	hours := OpeningHours{time.Friday: {Open: "11:15", Close: "20:00"}}

	slots := GenerateSlots(time.Friday, hours, 3, 30)

	assert.Equal(t, "11:15", slots[0])
	assert.Equal(t, "16:45", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:15")
}

func TestGenerateSlots_MinuteOverflowCarries(t *testing.T) {
	hours := OpeningHours{time.Saturday: {Open: "11:00", Close: "20:00"}}

	assert.Equal(t,
		[]string{"11:00", "11:45", "12:30", "13:15", "14:00", "14:45", "15:30", "16:15", "17:00"},
		GenerateSlots(time.Saturday, hours, 3, 45))
	assert.Equal(t,
		[]string{"11:00", "12:30", "14:00", "15:30", "17:00"},
		GenerateSlots(time.Saturday, hours, 3, 90))
}

func TestGenerateSlots_Degenerate(t *testing.T) {
	hours := OpeningHours{time.Saturday: {Open: "11:00", Close: "13:00"}}

	assert.Empty(t, GenerateSlots(time.Saturday, hours, 3, 30), "duration longer than opening")
	assert.Empty(t, GenerateSlots(time.Saturday, Metzenhof().OpeningHours, 3, 0), "zero interval")

	broken := OpeningHours{time.Saturday: {Open: "eleven", Close: "20:00"}}
	assert.Empty(t, GenerateSlots(time.Saturday, broken, 3, 30))
}

func TestGenerateSlots_Properties(t *testing.T) {
	cfg := Metzenhof()
	for day := time.Sunday; day <= time.Saturday; day++ {
		for _, interval := range []int{15, 20, 30, 45, 60} {
			slots := GenerateSlots(day, cfg.OpeningHours, cfg.ReservationDuration, interval)
			h, open := cfg.OpeningHours[day]
			if !open {
				assert.Empty(t, slots)
				continue
			}
			openAt, _ := ParseClock(h.Open)
			closeAt, _ := ParseClock(h.Close)

			var prev Clock = -1
			for _, s := range slots {
				c, err := ParseClock(s)
				require.NoError(t, err)
				assert.Greater(t, c, prev, "strictly increasing")
				assert.GreaterOrEqual(t, c, openAt)
				assert.LessOrEqual(t, c+Clock(cfg.ReservationDuration*60), closeAt)
				prev = c
			}
		}
	}
}

func TestIsSlot(t *testing.T) {
	hours := Metzenhof().OpeningHours

	assert.True(t, IsSlot("17:00", time.Friday, hours, 3, 30))
	assert.False(t, IsSlot("17:30", time.Friday, hours, 3, 30))
	assert.False(t, IsSlot("12:00", time.Monday, hours, 3, 30))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour())
	assert.Equal(t, 5, c.Minute())
	assert.Equal(t, "09:05", c.String())

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

package scheduler

import (
	"fmt"
	"time"
)

// BufferMinutes is the cleaning gap appended to a movie's runtime before
// the end of a slot is rounded up.
const BufferMinutes = 5

// latestEndHour caps how far past midnight a showtime may run: 02:00 of
// the day after the start date.
const latestEndHour = 2

// Slot is one resolved [Start, End) interval.
type Slot struct {
	Start time.Time
	End   time.Time
}

// RoundUpToQuarterHour returns t advanced to the next 00/15/30/45 minute
// mark, with seconds and below zeroed. Timestamps already on a mark only
// lose their sub-minute part.
func RoundUpToQuarterHour(t time.Time) time.Time {
	t = t.Truncate(time.Minute)

	if rem := t.Minute() % 15; rem != 0 {
		t = t.Add(time.Duration(15-rem) * time.Minute)
	}

	return t
}

// ParseTimeOfDay splits a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: must be HH:MM", s)
	}

	return parsed.Hour(), parsed.Minute(), nil
}

// ResolveSlot places timeOfDay on the given calendar date and derives the
// end of the slot: runtime plus buffer, rounded up to the quarter hour,
// capped at 02:00 of the following day.
func ResolveSlot(date time.Time, timeOfDay string, durationMinutes int) (Slot, error) {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return Slot{}, err
	}

	if durationMinutes <= 0 {
		return Slot{}, fmt.Errorf("movie duration must be positive, got %d", durationMinutes)
	}

	day := DateOnly(date)
	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	end := RoundUpToQuarterHour(start.Add(time.Duration(durationMinutes+BufferMinutes) * time.Minute))

	maxEnd := day.AddDate(0, 0, 1).Add(latestEndHour * time.Hour)
	if end.After(maxEnd) {
		end = maxEnd
	}

	return Slot{Start: start, End: end}, nil
}

// DateOnly truncates t to midnight of its calendar day, keeping the
// location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Intervals that merely touch do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

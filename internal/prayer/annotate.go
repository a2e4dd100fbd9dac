package prayer

import (
	"math"
	"time"
)

// Time is an output-facing prayer time: clock fields, a formatted
// string, and the next/passed flags computed against "now".
type Time struct {
	ID       ID
	Name     string
	Hour     int // 0-23
	Minute   int // 0-59
	Clock    string
	Next     bool
	Passed   bool
	Fallback bool
}

// Minutes returns the time as minutes since midnight.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Instant anchors the prayer time onto the given date, in that date's location.
func (t Time) Instant(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour, t.Minute, 0, 0, date.Location())
}

// SplitHour converts a fractional hour into clock hour and minute.
// The minute is rounded; a rounded-up 60 carries into the hour (mod 24).
func SplitHour(h float64) (hour, minute int) {
	hour = int(h)
	minute = int(math.Round((h - float64(hour)) * 60))
	if minute >= 60 {
		minute = 0
		hour = (hour + 1) % 24
	}
	if minute < 0 {
		minute = 0
	}
	return hour, minute
}

// Annotate converts raw moments into display-ready times, flagging
// which have passed and which is next relative to now's wall clock.
//
// Passed is true iff the prayer's minutes-since-midnight do not exceed
// now's. Next is the first entry not yet passed; when every prayer has
// passed, entry 0 wraps around (tomorrow's Fajr) and carries the flag.
func Annotate(moments []Moment, now time.Time, clock12 bool) []Time {
	nowMinutes := now.Hour()*60 + now.Minute()

	out := make([]Time, len(moments))
	for i, m := range moments {
		hour, minute := SplitHour(m.Hour)
		clock := FormatClock24(hour, minute)
		if clock12 {
			clock = FormatClock12(hour, minute)
		}
		out[i] = Time{
			ID:       m.ID,
			Name:     m.ID.String(),
			Hour:     hour,
			Minute:   minute,
			Clock:    clock,
			Passed:   hour*60+minute <= nowMinutes,
			Fallback: m.Fallback,
		}
	}

	next := -1
	for i := range out {
		if !out[i].Passed {
			next = i
			break
		}
	}
	if next == -1 && len(out) > 0 {
		next = 0
	}
	if next >= 0 {
		out[next].Next = true
	}

	return out
}

// NextTime returns the entry flagged as next, or nil for an empty schedule.
func NextTime(times []Time) *Time {
	for i := range times {
		if times[i].Next {
			return &times[i]
		}
	}
	return nil
}

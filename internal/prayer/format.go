package prayer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Format constants for display modes.
const (
	FormatTimeRemaining      = "time-remaining"
	FormatNextPrayerTime     = "next-prayer-time"
	FormatNameAndTime        = "name-and-time"
	FormatNameAndRemaining   = "name-and-remaining"
	FormatShortNameAndTime   = "short-name-and-time"
	FormatShortNameAndRemain = "short-name-and-remaining"
	FormatFull               = "full"
)

// FormatClock12 formats a clock time as "H:MM AM/PM" (hour 0 prints as
// 12, hours 13-23 wrap around).
func FormatClock12(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// FormatClock24 formats a clock time as "HH:MM".
func FormatClock24(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseClock12 parses a "H:MM AM/PM" string back into a 24-hour clock
// time. It is the inverse of FormatClock12.
func ParseClock12(s string) (hour, minute int, err error) {
	var h, m int
	var suffix string
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d %s", &h, &m, &suffix); err != nil {
		return 0, 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid clock string %q", s)
	}
	switch strings.ToUpper(suffix) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid AM/PM tag in %q", s)
	}
	return h, m, nil
}

// FormatRemaining formats a duration as "Xh Ym" or "Ym" if less than an hour.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Name      string // Full prayer name, e.g. "Asr"
	ShortName string // Abbreviated name, e.g. "A"
	Time      string // Formatted prayer time, e.g. "15:02" or "3:02 PM"
	Remaining string // Time remaining, e.g. "2h 15m"
	Hours     int    // Whole hours remaining
	Minutes   int    // Remaining minutes after hours
}

// FormatOutput formats a prayer time for status-bar display according
// to the chosen mode. remaining is the duration until the prayer.
//
// If mode contains "{{", it is treated as a custom Go template string.
// Available template fields: .Name, .ShortName, .Time, .Remaining, .Hours, .Minutes
//
// Example: "{{.Name}} in {{.Remaining}}" -> "Asr in 2h 15m"
func FormatOutput(t Time, remaining time.Duration, mode string) string {
	rem := FormatRemaining(remaining)
	short := ShortNames[t.Name]

	// Custom template mode: any format string containing "{{" is a Go template.
	if strings.Contains(mode, "{{") {
		return formatCustom(mode, FormatData{
			Name:      t.Name,
			ShortName: short,
			Time:      t.Clock,
			Remaining: rem,
			Hours:     int(remaining.Hours()),
			Minutes:   int(remaining.Minutes()) % 60,
		})
	}

	switch mode {
	case FormatTimeRemaining:
		return rem
	case FormatNextPrayerTime:
		return t.Clock
	case FormatNameAndRemaining:
		return fmt.Sprintf("%s %s", t.Name, rem)
	case FormatShortNameAndTime:
		return fmt.Sprintf("%s %s", short, t.Clock)
	case FormatShortNameAndRemain:
		return fmt.Sprintf("%s %s", short, rem)
	case FormatFull:
		return fmt.Sprintf("%s %s (%s)", t.Name, t.Clock, rem)
	default:
		// FormatNameAndTime and anything unrecognized.
		return fmt.Sprintf("%s %s", t.Name, t.Clock)
	}
}

// formatCustom executes a user-provided Go template string against the FormatData.
func formatCustom(tmpl string, data FormatData) string {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	return buf.String()
}

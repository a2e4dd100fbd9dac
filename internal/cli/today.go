package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/display"
	"github.com/aalrahma/salat-compass/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	// Merged config (CLI flags > env > config file > defaults).
	cfg := effectiveConfig(cmd)

	params, err := cfg.PrayerParams()
	if err != nil {
		return err
	}

	c := openCache(cfg)

	loc, err := resolveLocation(cfg, c)
	if err != nil {
		return err
	}

	at, now, err := computeDate(cmd)
	if err != nil {
		return err
	}

	times, err := scheduleFor(loc.Coord, at, now, params, selectedPrayers(cfg), clockIs12h(cfg))
	if err != nil {
		return err
	}

	if FlagJSON {
		return printTodayJSON(times, loc, at, cfg.Method)
	}

	printTodayRich(times, loc, at, now, cfg.Method)
	return nil
}

// printTodayRich renders the colored terminal output for the day's schedule.
func printTodayRich(times []prayer.Time, loc resolvedLocation, at, now time.Time, method string) {
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Prayer Times"))
	fmt.Println()
	fmt.Printf("  %s\n", buildLocationStr(loc))
	fmt.Printf("  %s\n", at.Format("Monday, 02 Jan 2006"))
	fmt.Printf("  %s\n", display.Gray("method: "+method))
	fmt.Println()

	// Find the max prayer name length for alignment.
	maxNameLen := 0
	for _, t := range times {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	for _, t := range times {
		line := fmt.Sprintf("  %-*s  %s", maxNameLen, t.Name, t.Clock)
		if t.Fallback {
			line += "  (approx.)"
		}

		switch {
		case t.Next:
			remaining := t.Instant(now).Sub(now)
			if remaining < 0 {
				// Wrapped to tomorrow's first prayer.
				remaining += 24 * time.Hour
			}
			suffix := fmt.Sprintf("  <- next in %s", prayer.FormatRemaining(remaining))
			fmt.Println(display.Accent(line) + display.Accent(suffix))
		case t.Passed:
			fmt.Println(display.Dim(line))
		default:
			fmt.Println(line)
		}
	}

	fmt.Println()
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     string            `json:"date"`
	Method   string            `json:"method"`
	Timings  map[string]string `json:"timings"`
	Next     string            `json:"next"`
	Passed   []string          `json:"passed"`
}

type todayJSONLocation struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(times []prayer.Time, loc resolvedLocation, at time.Time, method string) error {
	out := todayJSON{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Latitude:  loc.Coord.Latitude,
			Longitude: loc.Coord.Longitude,
		},
		Date:    at.Format("2006-01-02"),
		Method:  method,
		Timings: make(map[string]string, len(times)),
		Passed:  []string{},
	}

	for _, t := range times {
		key := strings.ToLower(t.Name)
		out.Timings[key] = t.Clock
		if t.Next {
			out.Next = key
		}
		if t.Passed {
			out.Passed = append(out.Passed, key)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

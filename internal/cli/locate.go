package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/cache"
	"github.com/aalrahma/salat-compass/internal/config"
	"github.com/aalrahma/salat-compass/internal/geo"
	"github.com/aalrahma/salat-compass/internal/prayer"
)

// resolvedLocation holds the result of location resolution.
type resolvedLocation struct {
	Coord   geo.Coordinate
	City    string
	Country string
	Source  string // "flags/config", "geocoder", "cache", "ip"
}

// resolveLocation determines the effective location.
// Priority: explicit coordinates > city via geocoder > cached
// geolocation > IP auto-detect.
func resolveLocation(cfg *config.Config, c *cache.Cache) (resolvedLocation, error) {
	coord := geo.Coordinate{Latitude: cfg.Latitude, Longitude: cfg.Longitude}

	switch {
	case !coord.IsZero():
		if err := coord.Validate(); err != nil {
			return resolvedLocation{}, err
		}
		return resolvedLocation{Coord: coord, Source: "flags/config"}, nil

	case cfg.City != "":
		geocoder := geo.NewStaticGeocoder()
		found, err := geocoder.Lookup(cfg.City)
		if err != nil {
			return resolvedLocation{}, err
		}
		log.Debug().Str("city", cfg.City).Msg("city resolved via built-in table")
		return resolvedLocation{Coord: found, City: cfg.City, Source: "geocoder"}, nil

	default:
		// Try cached geolocation first.
		if c != nil {
			if cached := c.LoadGeo(); cached != nil {
				log.Debug().Msg("using cached geolocation")
				return resolvedLocation{
					Coord:   cached.Coordinate,
					City:    cached.City,
					Country: cached.Country,
					Source:  "cache",
				}, nil
			}
		}

		// Fall back to IP-based geolocation.
		detected, err := geo.DetectLocation()
		if err != nil {
			return resolvedLocation{}, fmt.Errorf("no location specified and auto-detection failed: %w", err)
		}

		// Cache the detected location (best-effort).
		if c != nil {
			_ = c.SaveGeo(detected)
		}

		return resolvedLocation{
			Coord:   detected.Coordinate,
			City:    detected.City,
			Country: detected.Country,
			Source:  "ip",
		}, nil
	}
}

// openCache initializes the cache, degrading to nil on failure.
func openCache(cfg *config.Config) *cache.Cache {
	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		log.Warn().Err(err).Msg("cache disabled")
		return nil
	}
	return c
}

// buildLocationStr builds a human-readable location line.
func buildLocationStr(loc resolvedLocation) string {
	switch {
	case loc.City != "" && loc.Country != "":
		return loc.City + ", " + loc.Country
	case loc.City != "":
		return loc.City
	default:
		return loc.Coord.String()
	}
}

// computeDate resolves the --date flag. It returns the instant the
// schedule is computed for (noon local time on the target date, which
// pins the date while staying insensitive to DST edges) and the
// reference "now" used for passed/next flags: the wall clock when the
// target date is today, otherwise midnight so nothing is marked passed.
func computeDate(cmd *cobra.Command) (at, now time.Time, err error) {
	now = time.Now()

	if FlagDate == "" {
		at = time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
		return at, now, nil
	}

	parsed, perr := time.ParseInLocation("2006-01-02", FlagDate, now.Location())
	if perr != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", FlagDate)
	}

	at = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, now.Location())

	sameDay := parsed.Year() == now.Year() && parsed.YearDay() == now.YearDay()
	if !sameDay {
		now = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
	}
	return at, now, nil
}

// scheduleFor computes the annotated schedule for one day, filtered to
// the selected prayer names.
func scheduleFor(coord geo.Coordinate, at, now time.Time, params prayer.Params, selected []string, clock12 bool) ([]prayer.Time, error) {
	moments, err := prayer.Moments(coord, at, params)
	if err != nil {
		return nil, err
	}

	for _, m := range moments {
		if m.Fallback {
			log.Warn().
				Str("prayer", m.ID.String()).
				Float64("latitude", coord.Latitude).
				Msg("sun never reaches the required angle at this latitude; using fallback time")
		}
	}

	times := prayer.Annotate(moments, now, clock12)
	return filterTimes(times, selected), nil
}

// filterTimes keeps only the prayers whose names appear in selected,
// preserving order. Filtering happens after annotation so next/passed
// flags stay consistent with the full six-prayer day.
func filterTimes(times []prayer.Time, selected []string) []prayer.Time {
	if len(selected) == 0 {
		return times
	}
	keep := make(map[string]bool, len(selected))
	for _, name := range selected {
		keep[name] = true
	}
	out := times[:0:0]
	for _, t := range times {
		if keep[t.Name] {
			out = append(out, t)
		}
	}
	return out
}

// selectedPrayers resolves which prayers to show from the config.
func selectedPrayers(cfg *config.Config) []string {
	if cfg.Prayers == "" {
		return nil // all six
	}
	names := strings.Split(cfg.Prayers, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// clockIs12h reports whether the merged config asks for 12-hour clocks.
func clockIs12h(cfg *config.Config) bool {
	return cfg.TimeFormat == "12h"
}

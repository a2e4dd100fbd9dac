// tmux-salat prints the next prayer time in a single line, suitable for
// a tmux status bar. It is a thin stdlib-flag wrapper around the same
// local calculation the full CLI uses.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/aalrahma/salat-compass/internal/cache"
	"github.com/aalrahma/salat-compass/internal/geo"
	"github.com/aalrahma/salat-compass/internal/prayer"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	// Location flags
	latitude := flag.Float64("latitude", 0, "Latitude for prayer time calculation")
	longitude := flag.Float64("longitude", 0, "Longitude for prayer time calculation")
	city := flag.String("city", "", "City name (resolved via the built-in city table)")

	// Calculation flags
	method := flag.String("method", prayer.DefaultMethodKey, "Calculation method key (see -list-methods)")
	school := flag.Int("school", 0, "Asr juristic school: 0=Shafi, 1=Hanafi")

	// Display flags
	format := flag.String("format", prayer.FormatNameAndTime, "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template (e.g. '{{.Name}} in {{.Remaining}}'). Template fields: .Name, .ShortName, .Time, .Remaining, .Hours, .Minutes")
	timeFormat := flag.String("time-format", "24h", "Time format: 12h or 24h")

	// Cache flags
	cacheDir := flag.String("cache-dir", "", "Cache directory (default: ~/.cache/salat-compass/)")

	// Info flags
	showVersion := flag.Bool("version", false, "Print version and exit")
	listMethods := flag.Bool("list-methods", false, "Print supported calculation methods and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("tmux-salat %s\n", version)
		return
	}

	if *listMethods {
		printMethods()
		return
	}

	_ = godotenv.Load()

	if err := run(*latitude, *longitude, *city, *method, *school, *format, *timeFormat, *cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// printMethods prints the table of supported calculation methods.
func printMethods() {
	fmt.Println("Supported calculation methods:")
	fmt.Println()
	fmt.Printf("  %-9s %-5s %-5s %s\n", "Key", "Fajr", "Isha", "Name")
	fmt.Printf("  %-9s %-5s %-5s %s\n", "───", "────", "────", "────")
	for _, m := range prayer.Methods {
		fmt.Printf("  %-9s %-5.4g %-5.4g %s\n", m.Key, m.FajrAngle, m.IshaAngle, m.Name)
	}
	fmt.Println()
	fmt.Printf("Use -method <key> to select one (default: %s).\n", prayer.DefaultMethodKey)
}

func run(lat, lon float64, city, methodKey string, school int, format, timeFmt, cacheDir string) error {
	m, ok := prayer.MethodByKey(methodKey)
	if !ok {
		return fmt.Errorf("unknown method %q (see -list-methods)", methodKey)
	}
	shadow := prayer.ShadowFactorStandard
	if school == 1 {
		shadow = prayer.ShadowFactorHanafi
	}
	params := m.Params(shadow)

	// Cache init failure is non-fatal; we just skip caching.
	c, err := cache.New(cacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	coord, err := resolveCoordinate(lat, lon, city, c)
	if err != nil {
		return err
	}

	now := time.Now()
	clock12 := timeFmt == "12h"

	times, err := dayTimes(coord, now, now, params, clock12)
	if err != nil {
		return err
	}

	next := prayer.NextTime(times)
	if next == nil {
		return fmt.Errorf("could not determine next prayer")
	}

	date := now
	if next.Passed {
		// Every prayer today has passed: the schedule wrapped around to
		// tomorrow's first prayer, so recompute on tomorrow's sun.
		date = now.AddDate(0, 0, 1)
		tTimes, err := dayTimes(coord, date, now, params, clock12)
		if err != nil {
			return err
		}
		next = &tTimes[0]
	}

	remaining := next.Instant(date).Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	fmt.Print(prayer.FormatOutput(*next, remaining.Round(time.Minute), format))
	return nil
}

// dayTimes computes the annotated schedule for the day containing date.
func dayTimes(coord geo.Coordinate, date, now time.Time, params prayer.Params, clock12 bool) ([]prayer.Time, error) {
	at := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
	moments, err := prayer.Moments(coord, at, params)
	if err != nil {
		return nil, err
	}
	return prayer.Annotate(moments, now, clock12), nil
}

// resolveCoordinate determines the effective coordinate from flags, the
// city table, the geolocation cache, or IP detection, in that order.
func resolveCoordinate(lat, lon float64, city string, c *cache.Cache) (geo.Coordinate, error) {
	coord := geo.Coordinate{Latitude: lat, Longitude: lon}

	switch {
	case !coord.IsZero():
		if err := coord.Validate(); err != nil {
			return geo.Coordinate{}, err
		}
		return coord, nil

	case city != "":
		return geo.NewStaticGeocoder().Lookup(city)

	default:
		if c != nil {
			if cached := c.LoadGeo(); cached != nil {
				return cached.Coordinate, nil
			}
		}

		detected, err := geo.DetectLocation()
		if err != nil {
			return geo.Coordinate{}, fmt.Errorf("no location specified and auto-detection failed: %w", err)
		}

		if c != nil {
			_ = c.SaveGeo(detected) // best-effort
		}

		return detected.Coordinate, nil
	}
}

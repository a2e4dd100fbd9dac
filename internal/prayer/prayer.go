// Package prayer turns a coordinate and an instant into the day's six
// prayer times, computed locally from the sun's position.
package prayer

import (
	"fmt"
	"time"

	"github.com/aalrahma/salat-compass/internal/astro"
	"github.com/aalrahma/salat-compass/internal/geo"
)

// ID identifies one of the six daily prayers/events, in chronological order.
type ID int

const (
	Fajr ID = iota
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

var names = [...]string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

func (id ID) String() string {
	if id < Fajr || id > Isha {
		return "Unknown"
	}
	return names[id]
}

// AllIDs lists the six prayers in chronological order.
var AllIDs = []ID{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// ShortNames maps prayer names to abbreviations for compact status-bar output.
var ShortNames = map[string]string{
	"Fajr":    "F",
	"Sunrise": "S",
	"Dhuhr":   "D",
	"Asr":     "A",
	"Maghrib": "M",
	"Isha":    "I",
}

// Twilight and shadow constants.
const (
	// HorizonAngle is the depression of the sun's center at sunrise and
	// sunset, accounting for refraction and the solar disc radius.
	HorizonAngle = 0.833

	// ShadowFactorStandard is the Shafi'i/Maliki/Hanbali Asr convention;
	// ShadowFactorHanafi the Hanafi one.
	ShadowFactorStandard = 1.0
	ShadowFactorHanafi   = 2.0
)

// Fallback local hours used when the sun never reaches the required
// angle (extreme latitudes). Each is shifted by the UTC offset before
// normalization. This is a deliberate approximation kept for
// compatibility, not a model of real extreme-latitude practice.
const (
	fallbackMorning = 6.0
	fallbackEvening = 18.0
	fallbackAsr     = 15.0
)

// Params configures the calculation: twilight depression angles for
// Fajr and Isha, and the Asr shadow factor. Zero values fall back to
// the defaults (Muslim World League angles, standard shadow factor).
type Params struct {
	FajrAngle    float64 // degrees below the horizon
	IshaAngle    float64 // degrees below the horizon
	ShadowFactor float64 // 1 or 2
}

// DefaultParams returns the default calculation parameters:
// Fajr 18, Isha 17 (Muslim World League), shadow factor 1.
func DefaultParams() Params {
	return Params{FajrAngle: 18, IshaAngle: 17, ShadowFactor: ShadowFactorStandard}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.FajrAngle <= 0 {
		p.FajrAngle = d.FajrAngle
	}
	if p.IshaAngle <= 0 {
		p.IshaAngle = d.IshaAngle
	}
	if p.ShadowFactor <= 0 {
		p.ShadowFactor = d.ShadowFactor
	}
	return p
}

// Moment is a raw computed prayer time: a local clock hour in [0, 24).
// Fallback marks times substituted because the hour-angle equation had
// no solution.
type Moment struct {
	ID       ID
	Hour     float64
	Fallback bool
}

// Moments computes the six prayer moments for the given coordinate and
// instant, ordered [Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha]. The
// instant supplies both the date and the UTC offset; pass a time.Time
// in the zone the times should be expressed in.
//
// The computation is pure: no I/O, no shared state, safe from any
// goroutine.
func Moments(coord geo.Coordinate, at time.Time, p Params) ([]Moment, error) {
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coordinate: %w", err)
	}
	p = p.withDefaults()

	_, offsetSec := at.Zone()
	offset := float64(offsetSec) / 3600

	sun := astro.Position(astro.JulianDate(at))
	noon := astro.SolarNoon(coord.Longitude, sun.EquationOfTime, offset)

	moments := make([]Moment, 0, 6)
	add := func(id ID, hour float64, fallback bool) {
		moments = append(moments, Moment{ID: id, Hour: normalizeHour(hour), Fallback: fallback})
	}

	// Before-noon events.
	if h, ok := astro.HourAngle(coord.Latitude, sun.Declination, -p.FajrAngle); ok {
		add(Fajr, noon-h, false)
	} else {
		add(Fajr, fallbackMorning+offset, true)
	}
	if h, ok := astro.HourAngle(coord.Latitude, sun.Declination, -HorizonAngle); ok {
		add(Sunrise, noon-h, false)
	} else {
		add(Sunrise, fallbackMorning+offset, true)
	}

	add(Dhuhr, noon, false)

	// Asr is always on the afternoon side of solar noon.
	asrElev := astro.AsrElevation(coord.Latitude, sun.Declination, p.ShadowFactor)
	if h, ok := astro.HourAngle(coord.Latitude, sun.Declination, asrElev); ok {
		add(Asr, noon+h, false)
	} else {
		add(Asr, fallbackAsr+offset, true)
	}

	// After-noon events.
	if h, ok := astro.HourAngle(coord.Latitude, sun.Declination, -HorizonAngle); ok {
		add(Maghrib, noon+h, false)
	} else {
		add(Maghrib, fallbackEvening+offset, true)
	}
	if h, ok := astro.HourAngle(coord.Latitude, sun.Declination, -p.IshaAngle); ok {
		add(Isha, noon+h, false)
	} else {
		add(Isha, fallbackEvening+offset, true)
	}

	return moments, nil
}

// normalizeHour wraps an hour value into [0, 24).
func normalizeHour(h float64) float64 {
	for h < 0 {
		h += 24
	}
	for h >= 24 {
		h -= 24
	}
	return h
}

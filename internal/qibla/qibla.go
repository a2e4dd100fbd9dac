// Package qibla computes the great-circle bearing and distance from an
// observer to the Kaaba.
package qibla

import (
	"math"

	"github.com/aalrahma/salat-compass/internal/geo"
)

// Kaaba is the fixed target coordinate in Mecca.
var Kaaba = geo.Coordinate{Latitude: 21.4225, Longitude: 39.8262}

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Result is the qibla direction from an observer coordinate.
type Result struct {
	BearingDegrees float64 `json:"bearing_degrees"`
	DistanceKm     float64 `json:"distance_km"`
}

// From computes the bearing and distance from the observer to the Kaaba.
func From(observer geo.Coordinate) (Result, error) {
	if err := observer.Validate(); err != nil {
		return Result{}, err
	}
	return Result{
		BearingDegrees: Bearing(observer, Kaaba),
		DistanceKm:     Distance(observer, Kaaba),
	}, nil
}

// Distance returns the great-circle distance between two coordinates in
// kilometers, via the haversine formula. Coincident points yield 0.
func Distance(a, b geo.Coordinate) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Bearing returns the initial great-circle bearing from one coordinate
// toward another, in degrees clockwise from true north, in [0, 360).
// The bearing from a point to itself is arithmetically undefined
// (atan2(0, 0)); by policy it returns 0.
func Bearing(from, to geo.Coordinate) float64 {
	lat1 := toRad(from.Latitude)
	lat2 := toRad(to.Latitude)
	dLon := toRad(to.Longitude - from.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}

// compassPoints are the 16-wind names, clockwise from north.
var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint names the 16-wind compass point closest to the bearing.
func CompassPoint(bearingDegrees float64) string {
	idx := int(math.Round(math.Mod(bearingDegrees, 360)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

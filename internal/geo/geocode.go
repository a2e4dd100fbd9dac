package geo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by a Geocoder when the city is unknown.
var ErrNotFound = errors.New("city not found")

// Geocoder resolves a city name to a coordinate.
//
// Geocoding is an external, swappable collaborator: the built-in
// implementation is a small static table, but anything that can map a
// name to a coordinate (a real geocoding service, a user-supplied file)
// satisfies the interface.
type Geocoder interface {
	Lookup(city string) (Coordinate, error)
}

// StaticGeocoder resolves city names from a fixed built-in table.
// Lookups are case-insensitive.
type StaticGeocoder struct {
	cities map[string]Coordinate
}

// builtinCities covers major cities. Coordinates are city centers,
// which is plenty for prayer-time purposes.
var builtinCities = map[string]Coordinate{
	"mecca":        {Latitude: 21.4225, Longitude: 39.8262},
	"medina":       {Latitude: 24.4686, Longitude: 39.6142},
	"riyadh":       {Latitude: 24.7136, Longitude: 46.6753},
	"jeddah":       {Latitude: 21.4858, Longitude: 39.1925},
	"cairo":        {Latitude: 30.0444, Longitude: 31.2357},
	"istanbul":     {Latitude: 41.0082, Longitude: 28.9784},
	"dubai":        {Latitude: 25.2048, Longitude: 55.2708},
	"amman":        {Latitude: 31.9454, Longitude: 35.9284},
	"baghdad":      {Latitude: 33.3152, Longitude: 44.3661},
	"casablanca":   {Latitude: 33.5731, Longitude: -7.5898},
	"tunis":        {Latitude: 36.8065, Longitude: 10.1815},
	"karachi":      {Latitude: 24.8607, Longitude: 67.0011},
	"lahore":       {Latitude: 31.5204, Longitude: 74.3587},
	"dhaka":        {Latitude: 23.8103, Longitude: 90.4125},
	"jakarta":      {Latitude: -6.2088, Longitude: 106.8456},
	"kuala lumpur": {Latitude: 3.1390, Longitude: 101.6869},
	"singapore":    {Latitude: 1.3521, Longitude: 103.8198},
	"london":       {Latitude: 51.5074, Longitude: -0.1278},
	"paris":        {Latitude: 48.8566, Longitude: 2.3522},
	"berlin":       {Latitude: 52.5200, Longitude: 13.4050},
	"new york":     {Latitude: 40.7128, Longitude: -74.0060},
	"chicago":      {Latitude: 41.8781, Longitude: -87.6298},
	"toronto":      {Latitude: 43.6532, Longitude: -79.3832},
	"sydney":       {Latitude: -33.8688, Longitude: 151.2093},
}

// NewStaticGeocoder creates a geocoder backed by the built-in city table.
func NewStaticGeocoder() *StaticGeocoder {
	return &StaticGeocoder{cities: builtinCities}
}

// Lookup resolves a city name. Unknown cities return an error wrapping
// ErrNotFound.
func (g *StaticGeocoder) Lookup(city string) (Coordinate, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if coord, ok := g.cities[key]; ok {
		return coord, nil
	}
	return Coordinate{}, fmt.Errorf("%w: %q (known cities: %s)",
		ErrNotFound, city, strings.Join(g.Cities(), ", "))
}

// Cities returns the known city names in sorted order.
func (g *StaticGeocoder) Cities() []string {
	names := make([]string, 0, len(g.cities))
	for name := range g.cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package geo resolves the user's location: a coordinate value type, a
// city-name geocoder, and IP-based auto-detection for when the user has
// configured nothing at all.
package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Location is a detected location: a coordinate plus whatever place
// metadata the detection source could provide.
type Location struct {
	Coordinate
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// geoAPIURL is the geolocation API endpoint. It is a variable (not a constant)
// so that tests can override it with an httptest server URL.
var geoAPIURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country,timezone"

// DetectLocation uses ip-api.com to determine the user's location from their
// public IP address. This is a free service that requires no API key.
func DetectLocation() (*Location, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	log.Debug().Str("url", geoAPIURL).Msg("detecting location from IP")

	resp, err := client.Get(geoAPIURL)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	loc := &Location{
		Coordinate: Coordinate{Latitude: result.Lat, Longitude: result.Lon},
		City:       result.City,
		Country:    result.Country,
		Timezone:   result.Timezone,
	}
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("geolocation returned bad coordinate: %w", err)
	}

	log.Debug().
		Float64("lat", loc.Latitude).
		Float64("lon", loc.Longitude).
		Str("city", loc.City).
		Msg("location detected")

	return loc, nil
}

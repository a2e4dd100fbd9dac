package geo

import (
	"errors"
	"fmt"
	"math"
)

// Coordinate is a geographic point in decimal degrees.
// North latitudes and east longitudes are positive.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate reports whether the coordinate is a real point on the globe.
// NaN and out-of-range values are rejected with a descriptive error so
// that bad input fails loudly instead of propagating NaN through the
// prayer-time math.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return errors.New("coordinate contains NaN")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Longitude)
	}
	return nil
}

// IsZero reports whether the coordinate is the unset zero value.
// (0, 0) is a point in the Gulf of Guinea, but like the rest of the CLI
// we treat it as "no coordinate configured".
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// String formats the coordinate as "lat, lon" with four decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

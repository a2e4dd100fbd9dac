package geo

import (
	"math"
	"testing"
)

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{"valid", Coordinate{Latitude: 51.5074, Longitude: -0.1278}, false},
		{"north pole", Coordinate{Latitude: 90, Longitude: 0}, false},
		{"south pole", Coordinate{Latitude: -90, Longitude: 0}, false},
		{"date line", Coordinate{Latitude: 0, Longitude: 180}, false},
		{"antimeridian west", Coordinate{Latitude: 0, Longitude: -180}, false},
		{"latitude too high", Coordinate{Latitude: 90.1, Longitude: 0}, true},
		{"latitude too low", Coordinate{Latitude: -90.1, Longitude: 0}, true},
		{"longitude too high", Coordinate{Latitude: 0, Longitude: 180.1}, true},
		{"longitude too low", Coordinate{Latitude: 0, Longitude: -180.1}, true},
		{"NaN latitude", Coordinate{Latitude: math.NaN(), Longitude: 0}, true},
		{"NaN longitude", Coordinate{Latitude: 0, Longitude: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoordinate_IsZero(t *testing.T) {
	if !(Coordinate{}).IsZero() {
		t.Error("zero coordinate not reported as zero")
	}
	if (Coordinate{Latitude: 51.5}).IsZero() {
		t.Error("non-zero latitude reported as zero")
	}
	if (Coordinate{Longitude: -0.1}).IsZero() {
		t.Error("non-zero longitude reported as zero")
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	if got, want := c.String(), "51.5074, -0.1278"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

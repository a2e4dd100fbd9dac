package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/display"
	"github.com/aalrahma/salat-compass/internal/qibla"
)

func newQiblaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qibla",
		Short: "Show the qibla direction and distance to the Kaaba",
		Long:  "Compute the initial great-circle bearing and distance from your location\nto the Kaaba (21.4225N, 39.8262E).",
		RunE:  runQibla,
	}
}

func runQibla(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	c := openCache(cfg)

	loc, err := resolveLocation(cfg, c)
	if err != nil {
		return err
	}

	result, err := qibla.From(loc.Coord)
	if err != nil {
		return err
	}

	point := qibla.CompassPoint(result.BearingDegrees)

	if FlagJSON {
		out := struct {
			Location todayJSONLocation `json:"location"`
			Bearing  float64           `json:"bearing_degrees"`
			Compass  string            `json:"compass_point"`
			Distance float64           `json:"distance_km"`
		}{
			Location: todayJSONLocation{
				City:      loc.City,
				Country:   loc.Country,
				Latitude:  loc.Coord.Latitude,
				Longitude: loc.Coord.Longitude,
			},
			Bearing:  result.BearingDegrees,
			Compass:  point,
			Distance: result.DistanceKm,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Qibla"))
	fmt.Println()
	fmt.Printf("  %s\n", buildLocationStr(loc))
	fmt.Println()
	fmt.Printf("  %s  %.1f° (%s)\n", display.Arrow(result.BearingDegrees), result.BearingDegrees, point)
	fmt.Printf("  %s\n", display.Gray(fmt.Sprintf("%.0f km to the Kaaba", result.DistanceKm)))
	fmt.Println()
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/astro"
	"github.com/aalrahma/salat-compass/internal/display"
	"github.com/aalrahma/salat-compass/internal/prayer"
)

func newSunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sun",
		Short: "Show the solar parameters behind the calculation",
		Long:  "Display the Julian date, solar declination, equation of time and solar noon\nfor the location and date. Mostly useful for sanity-checking the math.",
		RunE:  runSun,
	}
}

func runSun(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	c := openCache(cfg)

	loc, err := resolveLocation(cfg, c)
	if err != nil {
		return err
	}

	at, _, err := computeDate(cmd)
	if err != nil {
		return err
	}

	_, offsetSec := at.Zone()
	offset := float64(offsetSec) / 3600

	jd := astro.JulianDate(at)
	sun := astro.Position(jd)
	noon := astro.SolarNoon(loc.Coord.Longitude, sun.EquationOfTime, offset)
	noonHour, noonMin := prayer.SplitHour(noon)

	if FlagJSON {
		out := struct {
			Date           string  `json:"date"`
			JulianDate     float64 `json:"julian_date"`
			Declination    float64 `json:"declination_degrees"`
			EquationOfTime float64 `json:"equation_of_time_minutes"`
			SolarNoon      string  `json:"solar_noon"`
		}{
			Date:           at.Format("2006-01-02"),
			JulianDate:     jd,
			Declination:    sun.Declination,
			EquationOfTime: sun.EquationOfTime,
			SolarNoon:      prayer.FormatClock24(noonHour, noonMin),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Sun, "+at.Format("02 Jan 2006")))
	fmt.Println()
	fmt.Printf("  %s\n", buildLocationStr(loc))
	fmt.Println()
	fmt.Printf("  %-18s %.5f\n", "Julian date", jd)
	fmt.Printf("  %-18s %+.3f°\n", "Declination", sun.Declination)
	fmt.Printf("  %-18s %+.2f min\n", "Equation of time", sun.EquationOfTime)
	fmt.Printf("  %-18s %s\n", "Solar noon", prayer.FormatClock24(noonHour, noonMin))
	fmt.Println()
	return nil
}

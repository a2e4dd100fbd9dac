package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/display"
	"github.com/aalrahma/salat-compass/internal/prayer"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days (default: 7), starting from --date or today.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, 7)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 30)
		},
	}
}

// dayTimes holds one day's computed schedule for list/query output.
type dayTimes struct {
	Date  time.Time
	Times []prayer.Time
}

func runList(cmd *cobra.Command, args []string, defaultDays int) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of days: %q (must be a positive integer)", args[0])
		}
		days = n
	}

	cfg := effectiveConfig(cmd)

	params, err := cfg.PrayerParams()
	if err != nil {
		return err
	}

	c := openCache(cfg)

	loc, err := resolveLocation(cfg, c)
	if err != nil {
		return err
	}

	start, now, err := computeDate(cmd)
	if err != nil {
		return err
	}

	daysList, err := computeDays(start, now, days, loc, params, selectedPrayers(cfg), clockIs12h(cfg))
	if err != nil {
		return err
	}

	if FlagJSON {
		return printListJSON(daysList, loc)
	}

	// Rich terminal output.
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("Prayer Times (%d days)", days)))
	fmt.Println()
	fmt.Printf("  %s\n", buildLocationStr(loc))
	fmt.Println()

	headers := []string{"Date"}
	for _, t := range daysList[0].Times {
		headers = append(headers, t.Name)
	}
	tbl := display.NewTable(headers)

	todayLabel := now.Format("2006-01-02")
	for _, dd := range daysList {
		row := []string{dd.Date.Format("Mon 02 Jan")}
		for _, t := range dd.Times {
			row = append(row, t.Clock)
		}
		if dd.Date.Format("2006-01-02") == todayLabel {
			tbl.AddAccentRow(row)
		} else {
			tbl.AddRow(row)
		}
	}

	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}

// computeDays computes schedules for `days` consecutive days starting
// from `start`. Every day after the first is annotated against its own
// midnight, so passed/next flags only mean something for today.
func computeDays(start, now time.Time, days int, loc resolvedLocation, params prayer.Params, selected []string, clock12 bool) ([]dayTimes, error) {
	out := make([]dayTimes, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		ref := now
		if i > 0 {
			ref = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		}
		times, err := scheduleFor(loc.Coord, date, ref, params, selected, clock12)
		if err != nil {
			return nil, err
		}
		out = append(out, dayTimes{Date: date, Times: times})
	}
	return out, nil
}

// listJSONOutput is the JSON structure for the list command.
type listJSONOutput struct {
	Location todayJSONLocation `json:"location"`
	Days     []listJSONDay     `json:"days"`
}

type listJSONDay struct {
	Date    string            `json:"date"`
	Timings map[string]string `json:"timings"`
}

func printListJSON(daysList []dayTimes, loc resolvedLocation) error {
	out := listJSONOutput{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Latitude:  loc.Coord.Latitude,
			Longitude: loc.Coord.Longitude,
		},
	}

	for _, dd := range daysList {
		timings := make(map[string]string, len(dd.Times))
		for _, t := range dd.Times {
			timings[strings.ToLower(t.Name)] = t.Clock
		}
		out.Days = append(out.Days, listJSONDay{
			Date:    dd.Date.Format("2006-01-02"),
			Timings: timings,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

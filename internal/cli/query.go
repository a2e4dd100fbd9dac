package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/display"
	"github.com/aalrahma/salat-compass/internal/prayer"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long:  "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	prayerName := args[0]

	// Validate and normalize the prayer name.
	valid := false
	for _, id := range prayer.AllIDs {
		if strings.EqualFold(id.String(), prayerName) {
			prayerName = id.String()
			valid = true
			break
		}
	}
	if !valid {
		known := make([]string, len(prayer.AllIDs))
		for i, id := range prayer.AllIDs {
			known[i] = id.String()
		}
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(known, ", "))
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

	// Determine number of days.
	days := 1
	if flagQueryDays != "" {
		switch flagQueryDays {
		case "week":
			days = 7
		case "month":
			days = 30
		default:
			n, err := fmt.Sscanf(flagQueryDays, "%d", &days)
			if err != nil || n != 1 || days < 1 {
				return fmt.Errorf("invalid --days value %q: must be a positive integer, 'week', or 'month'", flagQueryDays)
			}
		}
	}

	daysList, err := computeDays(start, now, days, loc, params, []string{prayerName}, clockIs12h(cfg))
	if err != nil {
		return err
	}

	// Single day: one line.
	if days == 1 {
		if len(daysList[0].Times) == 0 {
			return fmt.Errorf("no timing found for %s", prayerName)
		}
		t := daysList[0].Times[0]

		if FlagJSON {
			out := queryJSONSingle{
				Prayer: strings.ToLower(prayerName),
				Time:   t.Clock,
				Date:   start.Format("2006-01-02"),
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("%s %s\n", prayerName, t.Clock)
		return nil
	}

	if FlagJSON {
		return printQueryJSON(daysList, prayerName, loc)
	}

	// Rich terminal output.
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("%s Times (%d days)", prayerName, days)))
	fmt.Println()
	fmt.Printf("  %s\n", buildLocationStr(loc))
	fmt.Println()

	tbl := display.NewTable([]string{"Date", prayerName})

	todayLabel := now.Format("2006-01-02")
	for _, dd := range daysList {
		timeStr := ""
		if len(dd.Times) > 0 {
			timeStr = dd.Times[0].Clock
		}
		row := []string{dd.Date.Format("Mon 02 Jan"), timeStr}
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

type queryJSONSingle struct {
	Prayer string `json:"prayer"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}

type queryJSONMulti struct {
	Location todayJSONLocation `json:"location"`
	Prayer   string            `json:"prayer"`
	Days     []queryJSONDay    `json:"days"`
}

type queryJSONDay struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func printQueryJSON(daysList []dayTimes, prayerName string, loc resolvedLocation) error {
	out := queryJSONMulti{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Latitude:  loc.Coord.Latitude,
			Longitude: loc.Coord.Longitude,
		},
		Prayer: strings.ToLower(prayerName),
	}

	for _, dd := range daysList {
		timeStr := ""
		if len(dd.Times) > 0 {
			timeStr = dd.Times[0].Clock
		}
		out.Days = append(out.Days, queryJSONDay{
			Date: dd.Date.Format("2006-01-02"),
			Time: timeStr,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

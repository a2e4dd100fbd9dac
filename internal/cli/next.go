package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalrahma/salat-compass/internal/prayer"
)

var flagNextFormat string

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nWhen every prayer today has passed, tomorrow's Fajr is shown.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagNextFormat, "format", prayer.FormatFull, "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
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

	at, now, err := computeDate(cmd)
	if err != nil {
		return err
	}

	times, err := scheduleFor(loc.Coord, at, now, params, selectedPrayers(cfg), clockIs12h(cfg))
	if err != nil {
		return err
	}

	next := prayer.NextTime(times)
	if next == nil {
		return fmt.Errorf("could not determine next prayer")
	}

	nextInstant := next.Instant(now)
	if next.Passed {
		// All of today's prayers have passed: the flagged entry wrapped
		// around to the first prayer. Recompute it for tomorrow, since
		// the sun moves a little between days.
		tomorrow := at.AddDate(0, 0, 1)
		tTimes, err := scheduleFor(loc.Coord, tomorrow, now, params, selectedPrayers(cfg), clockIs12h(cfg))
		if err != nil {
			return fmt.Errorf("failed to compute tomorrow's times: %w", err)
		}
		if len(tTimes) == 0 {
			return fmt.Errorf("could not determine next prayer")
		}
		next = &tTimes[0]
		nextInstant = next.Instant(tomorrow)
	}

	remaining := nextInstant.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	fmt.Print(prayer.FormatOutput(*next, remaining.Round(time.Minute), flagNextFormat))
	return nil
}

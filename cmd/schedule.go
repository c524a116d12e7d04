package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/winnowlabs/winnow/core"
	"github.com/winnowlabs/winnow/internal/contract"
	"github.com/winnowlabs/winnow/internal/outwriter"
)

// scheduleCmd generates the day-by-day narrowing schedule.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate the day-by-day narrowing schedule.",
	Long: `Simulate the progressive narrowing of a daily time window [start, end].

Each simulated day the start moves forward and the end moves back by a fixed
step until the window collapses to a single instant ("hour zero"). Windows
that cross midnight (end earlier than start) are supported.

Two interpretations of --days are available via --finish-on-day:
- inclusive (default): collapse occurs ON day N, with today counted as day 1
- after-steps: exactly N narrowing steps are performed; collapse happens the
  day after the last generated row

Examples:
  # Collapse on day 10, from 09:00 to 21:00, written as CSV
  winnow schedule --start 09:00 --end 21:00 --days 10 --output csv --output-file schedule.csv

  # Same inputs, but do exactly 10 steps and collapse the day after
  winnow schedule --start 09:00 --end 21:00 --days 10 --finish-on-day after-steps

  # A window crossing midnight, floor rounding, rendered as a table
  winnow schedule --start 22:30 --end 05:15 --days 7 --rounding floor

  # Export for analysis in pandas/DuckDB
  winnow schedule --start 09:00 --end 21:00 --days 30 --output parquet --output-file schedule.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		res, err := core.GetScheduleResult(cfg)
		if err != nil {
			contract.LogFatal("Cannot generate schedule", err)
		}
		duration := time.Since(start)
		if err := outwriter.WriteScheduleResults(res, cfg, duration); err != nil {
			contract.LogFatal("Cannot write schedule", err)
		}
	},
}

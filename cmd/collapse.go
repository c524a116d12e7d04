package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/winnowlabs/winnow/core"
	"github.com/winnowlabs/winnow/internal/contract"
	"github.com/winnowlabs/winnow/schema"
)

// collapseSetup loads the minimal configuration needed to report the
// collapse instant. Unlike sharedSetup it does not require --days; only the
// two clock times are parsed.
func collapseSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	startStr := viper.GetString("start")
	if startStr == "" {
		return fmt.Errorf("--start is required")
	}
	start, err := contract.ParseClock(startStr)
	if err != nil {
		return fmt.Errorf("invalid --start value: %w", err)
	}
	cfg.Start = start

	endStr := viper.GetString("end")
	if endStr == "" {
		return fmt.Errorf("--end is required")
	}
	end, err := contract.ParseClock(endStr)
	if err != nil {
		return fmt.Errorf("invalid --end value: %w", err)
	}
	cfg.End = end

	emojis, err := contract.ParseBoolString(viper.GetString("emoji"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	return nil
}

// collapseSetupWrapper wraps collapseSetup to provide PreRunE for the
// collapse command.
func collapseSetupWrapper(_ *cobra.Command, _ []string) error {
	return collapseSetup()
}

// collapseCmd reports the collapse instant of a window without generating
// the full schedule.
var collapseCmd = &cobra.Command{
	Use:   "collapse",
	Short: "Report the collapse instant of a time window.",
	Long: `Report when a daily time window collapses to a single instant.

The collapse instant is the temporal midpoint of the window, independent of
how many days the narrowing runs or how the day count is interpreted.

Examples:
  # The midpoint of a regular daytime window
  winnow collapse --start 09:00 --end 21:00

  # Works for windows crossing midnight too
  winnow collapse --start 22:30 --end 05:15`,
	Args:    cobra.NoArgs,
	PreRunE: collapseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		collapse, err := core.CollapseInstant(cfg.Start, cfg.End)
		if err != nil {
			contract.LogFatal("Cannot compute collapse instant", err)
		}
		length := schema.Window{Start: cfg.Start, End: cfg.End}.Length()

		prefix := ""
		if cfg.UseEmojis {
			prefix = "🕛 "
		}
		fmt.Printf("Window %s-%s spans %d minutes\n", cfg.Start, cfg.End, length)
		fmt.Printf("%sHour zero (midpoint of the initial window) occurs at %s\n", prefix, collapse)
	},
}

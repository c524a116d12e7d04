// Package cmd defines the command-line interface for winnow.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/winnowlabs/winnow/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(collapseCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("start", "s", "", "Window start time of day (H:mm or HH:mm)")
	rootCmd.PersistentFlags().StringP("end", "e", "", "Window end time of day (H:mm or HH:mm)")
	rootCmd.PersistentFlags().String("output", string(contract.DefaultOutput), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in status messages (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored phase labels in table output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scheduleCmd to Viper
	scheduleCmd.Flags().IntP("days", "d", 0, "Number of simulated days (positive integer)")
	scheduleCmd.Flags().String("finish-on-day", string(contract.DefaultInterpretation), "Interpretation of days: inclusive or after-steps")
	scheduleCmd.Flags().String("rounding", string(contract.DefaultRounding), "Rounding mode for minute offsets: nearest or floor or ceil")
	if err := viper.BindPFlags(scheduleCmd.Flags()); err != nil {
		contract.LogFatal("Error binding schedule flags", err)
	}
}

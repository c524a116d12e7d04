package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/winnowlabs/winnow/internal/contract"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "winnow",
	Short:              "Simulate the daily narrowing of a time window.",
	Long:               `Winnow shrinks a daily time window day by day until it collapses to a single instant, and exports the resulting schedule.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".winnow") // Name of config file (without extension)
		viper.SetConfigType("yaml")    // We'll use YAML format
		viper.AddConfigPath(".")       // Look in the current directory
		viper.AddConfigPath("$HOME")   // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("WINNOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("finish-on-day", string(contract.DefaultInterpretation))
	viper.SetDefault("rounding", string(contract.DefaultRounding))
	viper.SetDefault("output", string(contract.DefaultOutput))
	viper.SetDefault("emoji", "yes")
	viper.SetDefault("color", "yes")
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and parsing. This populates the global 'cfg'
	// from 'input'; the core never sees raw text.
	return contract.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

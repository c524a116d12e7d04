// Package contract holds the boundary layer between raw user input and the
// core: configuration structs, validation, and clock-time parsing.
package contract

import (
	"fmt"
	"strings"

	"github.com/winnowlabs/winnow/schema"
)

// Default values for configuration.
const (
	DefaultInterpretation = schema.InclusiveDays
	DefaultRounding       = schema.NearestRounding
	DefaultOutput         = schema.TextOut
)

// Config holds the runtime configuration for a schedule run.
// This struct is the final, validated config; the core never sees raw text.
type Config struct {
	Start          schema.ClockMinute
	End            schema.ClockMinute
	Days           int
	Interpretation schema.Interpretation
	Rounding       schema.RoundingPolicy

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in status messages
	UseColors bool // Enable colored phase labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Start       string `mapstructure:"start"`
	End         string `mapstructure:"end"`
	Days        int    `mapstructure:"days"`
	FinishOnDay string `mapstructure:"finish-on-day"`
	Rounding    string `mapstructure:"rounding"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Width       int    `mapstructure:"width"`
	Emoji       string `mapstructure:"emoji"`
	Color       string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct. Handlers that override
// per-request fields (MCP) work on a clone so the base config stays intact.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. Unrecognized enum values are
// rejected here, before the core ever sees them.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Clock time parsing ---
	if input.Start == "" {
		return fmt.Errorf("--start is required")
	}
	start, err := ParseClock(input.Start)
	if err != nil {
		return fmt.Errorf("invalid --start value: %w", err)
	}
	cfg.Start = start

	if input.End == "" {
		return fmt.Errorf("--end is required")
	}
	end, err := ParseClock(input.End)
	if err != nil {
		return fmt.Errorf("invalid --end value: %w", err)
	}
	cfg.End = end

	// --- 2. Days Validation ---
	if input.Days <= 0 {
		return fmt.Errorf("days must be greater than 0 (received %d)", input.Days)
	}
	cfg.Days = input.Days

	// --- 3. Interpretation and Rounding Validation ---
	cfg.Interpretation = schema.Interpretation(strings.ToLower(input.FinishOnDay))
	if _, ok := schema.ValidInterpretations[cfg.Interpretation]; !ok {
		return fmt.Errorf("invalid finish-on-day '%s'. must be inclusive or after-steps", input.FinishOnDay)
	}

	cfg.Rounding = schema.RoundingPolicy(strings.ToLower(input.Rounding))
	if _, ok := schema.ValidRoundingPolicies[cfg.Rounding]; !ok {
		return fmt.Errorf("invalid rounding '%s'. must be nearest, floor, ceil", input.Rounding)
	}

	// --- 4. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	return nil
}

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnowlabs/winnow/schema"
)

// validInput returns a raw input that passes all validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Start:       "09:00",
		End:         "21:00",
		Days:        10,
		FinishOnDay: "inclusive",
		Rounding:    "nearest",
		Output:      "text",
		Emoji:       "yes",
		Color:       "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validInput())
	require.NoError(t, err)

	assert.Equal(t, schema.ClockMinute(540), cfg.Start)
	assert.Equal(t, schema.ClockMinute(1260), cfg.End)
	assert.Equal(t, 10, cfg.Days)
	assert.Equal(t, schema.InclusiveDays, cfg.Interpretation)
	assert.Equal(t, schema.NearestRounding, cfg.Rounding)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateCaseInsensitiveEnums(t *testing.T) {
	input := validInput()
	input.FinishOnDay = "After-Steps"
	input.Rounding = "FLOOR"
	input.Output = "CSV"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.AfterSteps, cfg.Interpretation)
	assert.Equal(t, schema.FloorRounding, cfg.Rounding)
	assert.Equal(t, schema.CSVOut, cfg.Output)
}

func TestProcessAndValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantMsg string
	}{
		{"missing start", func(in *ConfigRawInput) { in.Start = "" }, "--start is required"},
		{"malformed start", func(in *ConfigRawInput) { in.Start = "9am" }, "invalid --start"},
		{"out of range start", func(in *ConfigRawInput) { in.Start = "24:00" }, "invalid --start"},
		{"missing end", func(in *ConfigRawInput) { in.End = "" }, "--end is required"},
		{"malformed end", func(in *ConfigRawInput) { in.End = "12:60" }, "invalid --end"},
		{"zero days", func(in *ConfigRawInput) { in.Days = 0 }, "days must be greater than 0"},
		{"negative days", func(in *ConfigRawInput) { in.Days = -3 }, "days must be greater than 0"},
		{"bad interpretation", func(in *ConfigRawInput) { in.FinishOnDay = "weekly" }, "invalid finish-on-day"},
		{"bad rounding", func(in *ConfigRawInput) { in.Rounding = "banker" }, "invalid rounding"},
		{"bad output", func(in *ConfigRawInput) { in.Output = "xml" }, "invalid output format"},
		{"bad emoji", func(in *ConfigRawInput) { in.Emoji = "maybe" }, "invalid --emoji"},
		{"bad color", func(in *ConfigRawInput) { in.Color = "sometimes" }, "invalid --color"},
		{"parquet without file", func(in *ConfigRawInput) { in.Output = "parquet" }, "--output-file is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestProcessAndValidateParquetWithFile(t *testing.T) {
	input := validInput()
	input.Output = "parquet"
	input.OutputFile = "schedule.parquet"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.ParquetOut, cfg.Output)
	assert.Equal(t, "schedule.parquet", cfg.OutputFile)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Start:          540,
		End:            1260,
		Days:           10,
		Interpretation: schema.InclusiveDays,
		Rounding:       schema.NearestRounding,
	}

	clone := cfg.Clone()
	clone.Days = 3
	clone.Rounding = schema.CeilRounding

	assert.Equal(t, 10, cfg.Days)
	assert.Equal(t, schema.NearestRounding, cfg.Rounding)
}

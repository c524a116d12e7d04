package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinuteNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    ClockMinute
		expected ClockMinute
	}{
		{"zero", 0, 0},
		{"in range", 540, 540},
		{"last minute", 1439, 1439},
		{"exactly one day", 1440, 0},
		{"past midnight", 1500, 60},
		{"negative wraps back", -1, 1439},
		{"negative full day", -1440, 0},
		{"large negative", -2881, 1439},
		{"multiple days ahead", 3000, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize())
		})
	}
}

func TestClockMinuteString(t *testing.T) {
	tests := []struct {
		name     string
		input    ClockMinute
		expected string
	}{
		{"midnight", 0, "00:00"},
		{"morning", 540, "09:00"},
		{"single digit minute", 545, "09:05"},
		{"last minute of day", 1439, "23:59"},
		{"wraps past midnight", 1500, "01:00"},
		{"negative wraps", -30, "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestWindowLength(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		expected int
	}{
		{"regular daytime window", Window{Start: 540, End: 1260}, 720},
		{"crosses midnight", Window{Start: 22*60 + 30, End: 5*60 + 15}, 405},
		{"degenerate window", Window{Start: 540, End: 540}, 0},
		{"one minute", Window{Start: 0, End: 1}, 1},
		{"almost full day", Window{Start: 1, End: 0}, 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Length())
		})
	}
}

func TestScheduleRowLength(t *testing.T) {
	row := ScheduleRow{Day: 3, Start: 900, End: 900}
	assert.Equal(t, 0, row.Length())

	row = ScheduleRow{Day: 1, Start: 540, End: 1260}
	assert.Equal(t, 720, row.Length())

	// Start and end crossed by one rounding unit near the collapse point.
	row = ScheduleRow{Day: 9, Start: 901, End: 900}
	assert.Equal(t, MinutesPerDay-1, row.Length())
}

package contract

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/winnowlabs/winnow/schema"
)

// ErrInvalidTimeFormat reports malformed or out-of-range clock time text.
var ErrInvalidTimeFormat = errors.New("invalid clock time")

// Color variables for console output.
var (
	OpenColor      = color.New(color.FgCyan)                // OpenColor marks a wide, unremarkable window.
	NarrowingColor = color.New(color.FgGreen)               // NarrowingColor marks steady progress.
	TightColor     = color.New(color.FgYellow)              // TightColor marks standard caution, not bold.
	ClosingColor   = color.New(color.FgMagenta, color.Bold) // ClosingColor marks a strong, distinct warning.
	CollapsedColor = color.New(color.FgRed, color.Bold)     // CollapsedColor marks the window at (or past) collapse.
)

// ParseClock parses "H:mm" or "HH:mm" text into minutes since midnight.
// Hours must be 0-23 and minutes 0-59; anything else fails with
// ErrInvalidTimeFormat. This runs before the core is ever called.
func ParseClock(s string) (schema.ClockMinute, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w %q: expected H:mm or HH:mm", ErrInvalidTimeFormat, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected H:mm or HH:mm", ErrInvalidTimeFormat, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected H:mm or HH:mm", ErrInvalidTimeFormat, s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w %q: hours must be 0-23 and minutes 0-59", ErrInvalidTimeFormat, s)
	}

	return schema.ClockMinute(h*60 + m), nil
}

// GetColorPhase returns a colored phase label for console output (table).
// It uses schema.GetPlainPhase to determine the string, and then applies
// the appropriate color.
func GetColorPhase(remaining, original int) string {
	text := schema.GetPlainPhase(remaining, original)

	switch text {
	case schema.OpenPhase:
		return OpenColor.Sprint(text)
	case schema.NarrowingPhase:
		return NarrowingColor.Sprint(text)
	case schema.TightPhase:
		return TightColor.Sprint(text)
	case schema.ClosingPhase:
		return ClosingColor.Sprint(text)
	default: // "Collapsed"
		return CollapsedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}

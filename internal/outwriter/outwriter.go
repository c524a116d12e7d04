// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/winnowlabs/winnow/internal/contract"
)

// minDetailWidth is the narrowest terminal that still fits the Length and
// Phase columns next to Day/Start/End with table borders and padding.
const minDetailWidth = 48

// GetTableWidth returns the terminal width used to size table output.
// A --width override wins; otherwise the terminal is probed, with a
// conservative fallback for pipes and CI.
func GetTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}

// showDetailColumns reports whether the Length and Phase columns fit.
func showDetailColumns(cfg *contract.Config) bool {
	return GetTableWidth(cfg) >= minDetailWidth
}

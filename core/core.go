// Package core has the narrowing algorithm: step solving, rounding and
// schedule generation. All functions are pure and never print or log;
// presenting failures to the user is the caller's job.
package core

import (
	"errors"

	"github.com/winnowlabs/winnow/internal/contract"
	"github.com/winnowlabs/winnow/schema"
)

// Validation failure taxonomy. Every failure is deterministic for a given
// input set, so callers should not retry.
var (
	// ErrInvalidDays reports a day count that is zero or negative.
	ErrInvalidDays = errors.New("days must be a positive integer")

	// ErrEmptyWindow reports equal start and end times (window length 0).
	ErrEmptyWindow = errors.New("start and end times define an empty window")

	// ErrInvalidInterpretation reports a day-count interpretation outside
	// the closed enum.
	ErrInvalidInterpretation = errors.New("interpretation must be 'inclusive' or 'after-steps'")

	// ErrInvalidRounding reports a rounding policy outside the closed enum.
	ErrInvalidRounding = errors.New("rounding must be 'nearest', 'floor', or 'ceil'")
)

// GetScheduleResult runs the full narrowing pipeline for a validated config
// and packages the rows with the derived quantities the output layers need.
// It serves as the main entry point for the 'schedule' mode.
func GetScheduleResult(cfg *contract.Config) (*schema.ScheduleResult, error) {
	rows, err := GenerateSchedule(cfg.Start, cfg.End, cfg.Days, cfg.Interpretation, cfg.Rounding)
	if err != nil {
		return nil, err
	}

	step, err := ComputeStep(cfg.Start, cfg.End, cfg.Days, cfg.Interpretation)
	if err != nil {
		return nil, err
	}

	collapse, err := CollapseInstant(cfg.Start, cfg.End)
	if err != nil {
		return nil, err
	}

	window := schema.Window{Start: cfg.Start, End: cfg.End}
	return &schema.ScheduleResult{
		Window:         window,
		Days:           cfg.Days,
		Interpretation: cfg.Interpretation,
		Rounding:       cfg.Rounding,
		Step:           step,
		Length:         window.Length(),
		Collapse:       collapse,
		Rows:           rows,
	}, nil
}

package core

import (
	"fmt"

	"github.com/winnowlabs/winnow/schema"
)

// ComputeStep derives the fractional per-day narrowing step m in minutes.
//
// Under the inclusive interpretation the window must collapse exactly on
// the generated day 'days', so the cumulative offset on the last day,
// (days-1)*m, equals L/2. A single inclusive day means the window is
// already at collapse and m is 0. Under the after-steps interpretation
// 'days' narrowing steps are performed and displayed; collapse happens one
// day later, outside the generated range, so m = L/(2*days).
//
// The result is not rounded at this stage.
func ComputeStep(a, b schema.ClockMinute, days int, interp schema.Interpretation) (float64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w (received %d)", ErrInvalidDays, days)
	}

	length := schema.Window{Start: a, End: b}.Length()
	if length == 0 {
		return 0, fmt.Errorf("%w (%s to %s)", ErrEmptyWindow, a, b)
	}

	switch interp {
	case schema.InclusiveDays:
		if days == 1 {
			return 0, nil
		}
		return float64(length) / (2.0 * float64(days-1)), nil
	case schema.AfterSteps:
		return float64(length) / (2.0 * float64(days)), nil
	default:
		return 0, fmt.Errorf("%w (received %q)", ErrInvalidInterpretation, interp)
	}
}

package core

import (
	"github.com/winnowlabs/winnow/schema"
)

// GenerateSchedule produces one row per simulated day, narrowing the
// window [a, b] by the per-day step under the given interpretation and
// rounding the fractional offsets back to whole-minute clock times.
//
// Both interpretations emit exactly 'days' rows with the same offset
// formula; they differ only in the step size. Under after-steps the rows
// are the pre-collapse windows after each step, and the collapse day
// itself falls outside the generated range. Near the collapse point start
// and end may display identically or cross by at most a rounding unit;
// that is expected and not re-validated.
//
// On any precondition violation no rows are returned.
func GenerateSchedule(a, b schema.ClockMinute, days int, interp schema.Interpretation, rounding schema.RoundingPolicy) ([]schema.ScheduleRow, error) {
	m, err := ComputeStep(a, b, days, interp)
	if err != nil {
		return nil, err
	}

	round, err := rounderFor(rounding)
	if err != nil {
		return nil, err
	}

	rows := make([]schema.ScheduleRow, 0, days)
	for d := 1; d <= days; d++ {
		offset := float64(d-1) * m
		start := schema.ClockMinute(round(float64(a) + offset)).Normalize()
		end := schema.ClockMinute(round(float64(b) - offset)).Normalize()
		rows = append(rows, schema.ScheduleRow{Day: d, Start: start, End: end})
	}
	return rows, nil
}

// CollapseInstant returns the temporal midpoint of the original window,
// the moment start and end meet. It is independent of the day-count
// interpretation, which only controls how fast the window gets there.
func CollapseInstant(a, b schema.ClockMinute) (schema.ClockMinute, error) {
	length := schema.Window{Start: a, End: b}.Length()
	if length == 0 {
		return 0, ErrEmptyWindow
	}
	mid := float64(a) + float64(length)/2.0
	return schema.ClockMinute(RoundHalfAwayFromZero(mid)).Normalize(), nil
}

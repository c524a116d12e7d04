// Package schema has models, enums and global variables for all parts of winnow.
package schema

import "fmt"

// MinutesPerDay is the number of minutes on a 24-hour clock.
const MinutesPerDay = 24 * 60

// ClockMinute represents a time of day as minutes elapsed since local
// midnight. Valid inputs are in [0, MinutesPerDay); derived values may fall
// outside that range and must be normalized before display.
type ClockMinute int

// Normalize reduces the value to the canonical [0, MinutesPerDay) range.
// The result is non-negative even for negative inputs, which the built-in
// remainder operator does not guarantee.
func (c ClockMinute) Normalize() ClockMinute {
	m := (int(c)%MinutesPerDay + MinutesPerDay) % MinutesPerDay
	return ClockMinute(m)
}

// String formats the minute as a zero-padded "HH:mm" clock time.
// Values outside [0, MinutesPerDay) wrap around 24h, so this is total
// over all integers.
func (c ClockMinute) String() string {
	m := int(c.Normalize())
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Window is a daily time interval running forward from Start to End,
// wrapping past midnight when End is numerically earlier than Start.
type Window struct {
	Start ClockMinute
	End   ClockMinute
}

// Length returns the forward length of the window in minutes, in
// [0, MinutesPerDay). A zero length marks a degenerate (empty) window.
func (w Window) Length() int {
	d := int(w.End) - int(w.Start)
	return (d%MinutesPerDay + MinutesPerDay) % MinutesPerDay
}

// ScheduleRow is one simulated day's window. Rows are created by the
// generator and never mutated afterwards.
type ScheduleRow struct {
	Day   int         // Day index, starting at 1
	Start ClockMinute // Window start after (Day-1) narrowing steps
	End   ClockMinute // Window end after (Day-1) narrowing steps
}

// Length returns the remaining forward length of the row's window.
// Near the collapse point start and end converge, so this approaches zero
// (or wraps just below MinutesPerDay when rounding lets them cross).
func (r ScheduleRow) Length() int {
	return Window{Start: r.Start, End: r.End}.Length()
}

// ScheduleResult bundles generated rows with the derived quantities the
// output and summary layers report.
type ScheduleResult struct {
	Window         Window
	Days           int
	Interpretation Interpretation
	Rounding       RoundingPolicy
	Step           float64     // Per-day narrowing step m, in minutes
	Length         int         // Original window length L, in minutes
	Collapse       ClockMinute // Temporal midpoint of the original window
	Rows           []ScheduleRow
}

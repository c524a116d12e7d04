package schema

// Custom string types for type safety.
type (
	// Interpretation represents how the day count maps to the daily step.
	Interpretation string

	// RoundingPolicy represents how fractional minute offsets become
	// whole-minute clock times.
	RoundingPolicy string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All interpretations supported.
const (
	// InclusiveDays means collapse occurs ON day N, with today as day 1.
	InclusiveDays Interpretation = "inclusive" // default

	// AfterSteps means exactly N narrowing steps are performed and
	// collapse occurs the day after the last generated row.
	AfterSteps Interpretation = "after-steps"
)

// All rounding policies supported.
const (
	NearestRounding RoundingPolicy = "nearest" // default; halves round away from zero
	FloorRounding   RoundingPolicy = "floor"
	CeilRounding    RoundingPolicy = "ceil"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidInterpretations lists all valid day-count interpretations.
var ValidInterpretations = map[Interpretation]struct{}{
	InclusiveDays: {},
	AfterSteps:    {},
}

// ValidRoundingPolicies lists all valid rounding policies.
var ValidRoundingPolicies = map[RoundingPolicy]struct{}{
	NearestRounding: {},
	FloorRounding:   {},
	CeilRounding:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

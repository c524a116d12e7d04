package schema

// Phase labels describing how far a row's window has narrowed.
const (
	OpenPhase      = "Open"
	NarrowingPhase = "Narrowing"
	TightPhase     = "Tight"
	ClosingPhase   = "Closing"
	CollapsedPhase = "Collapsed"
)

// EnrichedScheduleRow adds presentation data to a ScheduleRow.
type EnrichedScheduleRow struct {
	Day           int    `json:"day"`
	Start         string `json:"start"`
	End           string `json:"end"`
	LengthMinutes int    `json:"length_minutes"`
	Phase         string `json:"phase"`
}

// ScheduleRenderModel is the presentation form of a full schedule run,
// used for JSON output and MCP tool responses.
type ScheduleRenderModel struct {
	Start          string                `json:"start"`
	End            string                `json:"end"`
	Days           int                   `json:"days"`
	Interpretation Interpretation        `json:"interpretation"`
	Rounding       RoundingPolicy        `json:"rounding"`
	StepMinutes    float64               `json:"step_minutes"`
	LengthMinutes  int                   `json:"length_minutes"`
	Collapse       string                `json:"collapse"`
	Rows           []EnrichedScheduleRow `json:"rows"`
}

// GetPlainPhase returns a plain text label for how far a window has
// narrowed relative to the original length. Rows whose start and end have
// crossed by a rounding unit report a remaining length near MinutesPerDay;
// those count as collapsed.
func GetPlainPhase(remaining, original int) string {
	if original <= 0 {
		return CollapsedPhase
	}
	if remaining == 0 || remaining > original {
		return CollapsedPhase
	}
	ratio := float64(remaining) / float64(original)
	switch {
	case ratio >= 0.75:
		return OpenPhase
	case ratio >= 0.50:
		return NarrowingPhase
	case ratio >= 0.25:
		return TightPhase
	default:
		return ClosingPhase
	}
}

// EnrichRows converts schedule rows into their presentation form.
func EnrichRows(rows []ScheduleRow, original int) []EnrichedScheduleRow {
	output := make([]EnrichedScheduleRow, len(rows))
	for i, r := range rows {
		remaining := r.Length()
		output[i] = EnrichedScheduleRow{
			Day:           r.Day,
			Start:         r.Start.String(),
			End:           r.End.String(),
			LengthMinutes: remaining,
			Phase:         GetPlainPhase(remaining, original),
		}
	}
	return output
}

// NewScheduleRenderModel builds the presentation model for a schedule result.
func NewScheduleRenderModel(res *ScheduleResult) *ScheduleRenderModel {
	return &ScheduleRenderModel{
		Start:          res.Window.Start.String(),
		End:            res.Window.End.String(),
		Days:           res.Days,
		Interpretation: res.Interpretation,
		Rounding:       res.Rounding,
		StepMinutes:    res.Step,
		LengthMinutes:  res.Length,
		Collapse:       res.Collapse.String(),
		Rows:           EnrichRows(res.Rows, res.Length),
	}
}

// Package parquet provides data structures and functions for exporting
// generated schedules to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/winnowlabs/winnow/schema"
)

// ScheduleEntry represents one simulated day in the parquet output.
// It carries both the formatted clock times (matching the CSV artifact)
// and the raw minute offsets for downstream numeric analysis.
type ScheduleEntry struct {
	// Day is the 1-based day index
	Day int32 `parquet:"day,snappy"`

	// Start is the window start formatted as HH:mm
	Start string `parquet:"start,snappy"`

	// End is the window end formatted as HH:mm
	End string `parquet:"end,snappy"`

	// StartMinute is the window start in minutes since midnight
	StartMinute int32 `parquet:"start_minute,snappy"`

	// EndMinute is the window end in minutes since midnight
	EndMinute int32 `parquet:"end_minute,snappy"`

	// LengthMinutes is the remaining forward window length in minutes
	LengthMinutes int32 `parquet:"length_minutes,snappy"`
}

// FromScheduleRows converts generated rows into parquet entries.
func FromScheduleRows(rows []schema.ScheduleRow) []ScheduleEntry {
	entries := make([]ScheduleEntry, len(rows))
	for i, r := range rows {
		entries[i] = ScheduleEntry{
			Day:           int32(r.Day),
			Start:         r.Start.String(),
			End:           r.End.String(),
			StartMinute:   int32(r.Start),
			EndMinute:     int32(r.End),
			LengthMinutes: int32(r.Length()),
		}
	}
	return entries
}

// WriteScheduleParquet writes a slice of ScheduleEntry structs to a Parquet file.
func WriteScheduleParquet(data []ScheduleEntry, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ScheduleEntry struct tags
	writer := parquet.NewGenericWriter[ScheduleEntry](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Explicitly close the writer to flush all data
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return nil
}

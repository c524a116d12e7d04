package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/winnowlabs/winnow/internal/contract"
	"github.com/winnowlabs/winnow/internal/parquet"
	"github.com/winnowlabs/winnow/schema"
)

// WriteScheduleResults outputs the generated schedule, dispatching based on
// the output format configured.
func WriteScheduleResults(res *schema.ScheduleResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScheduleJSONResults(res, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScheduleCSVResults(res, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScheduleParquetResults(res, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeScheduleTable(res, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScheduleJSONResults handles opening the file and calling the JSON writer.
func writeScheduleJSONResults(res *schema.ScheduleResult, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeJSON(w, schema.NewScheduleRenderModel(res))
	}, "Wrote JSON")
}

// writeScheduleCSVResults handles opening the file and calling the CSV writer.
func writeScheduleCSVResults(res *schema.ScheduleResult, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForSchedule(csvWriter, res.Rows)
	}, "Wrote CSV")
}

// writeScheduleParquetResults converts the rows and delegates to the
// parquet writer. Parquet cannot stream to stdout, so validation has
// already guaranteed an output file.
func writeScheduleParquetResults(res *schema.ScheduleResult, cfg *contract.Config) error {
	entries := parquet.FromScheduleRows(res.Rows)
	if err := parquet.WriteScheduleParquet(entries, cfg.OutputFile); err != nil {
		return err
	}
	prefix := ""
	if cfg.UseEmojis {
		prefix = "💾 "
	}
	fmt.Fprintf(os.Stderr, "%sWrote parquet to %s\n", prefix, cfg.OutputFile)
	return nil
}

// writeCSVResultsForSchedule writes the rows in the canonical CSV layout:
// a header naming the three fields, then one record per simulated day.
func writeCSVResultsForSchedule(w *csv.Writer, rows []schema.ScheduleRow) error {
	header := []string{"id", "start", "end"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Day),
			r.Start.String(),
			r.End.String(),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeScheduleTable generates and writes the human-readable table.
func writeScheduleTable(res *schema.ScheduleResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	detail := showDetailColumns(cfg)

	// 1. Define Headers
	headers := []string{"Day", "Start", "End"}
	if detail {
		headers = append(headers, "Length", "Phase")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, r := range res.Rows {
		row := []string{
			strconv.Itoa(r.Day),
			r.Start.String(),
			r.End.String(),
		}
		if detail {
			remaining := r.Length()
			phase := schema.GetPlainPhase(remaining, res.Length)
			if cfg.UseColors {
				phase = contract.GetColorPhase(remaining, res.Length)
			}
			row = append(row, strconv.Itoa(remaining), phase)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary footer
	if _, err := fmt.Fprintf(writer, "Simulated %d days: %s-%s narrows by %.2f min/day (%s, %s rounding)\n",
		res.Days, res.Window.Start, res.Window.End, res.Step, res.Interpretation, res.Rounding); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Hour zero (midpoint of the initial %d-minute window) occurs at %s\n",
		res.Length, res.Collapse); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Generated %d rows in %v\n", len(res.Rows), duration); err != nil {
		return err
	}
	return nil
}

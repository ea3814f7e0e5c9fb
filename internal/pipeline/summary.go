package pipeline

import (
	"path/filepath"

	"github.com/backmassage/audiobatch/internal/display"
	"github.com/backmassage/audiobatch/internal/logging"
)

// LogSummary prints the end-of-run counts and a per-item outcome table.
func LogSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d converted, %d skipped, %d failed (of %d)",
		stats.Done, stats.Skipped, stats.Failed, stats.Total)
	if len(stats.Items) == 0 {
		return
	}
	log.Plain(SummaryTable(stats) + "\n")

	if stats.Done > 0 {
		log.Success("  Total output: %s from %s of input",
			display.FormatBytes(stats.TotalOutputBytes),
			display.FormatBytes(stats.TotalInputBytes))
	}
	for _, r := range stats.Items {
		if r.Outcome == OutcomeFailed {
			log.Error("  Failed: %s (%s)", r.Source.Name, Reason(r.Err))
		}
	}
}

// SummaryTable renders stats.Items as a table of file, status, output,
// size and reason.
func SummaryTable(stats *RunStats) string {
	rows := make([][]string, 0, len(stats.Items))
	for _, r := range stats.Items {
		size, reason := "", ""
		if r.Outcome == OutcomeDone {
			size = display.FormatBytes(r.Size)
		} else {
			reason = Reason(r.Err)
		}
		rows = append(rows, []string{
			display.Truncate(r.Source.Name, 48),
			string(r.Outcome),
			filepath.Base(r.Output),
			size,
			reason,
		})
	}
	return display.RenderTable(
		[]string{"File", "Status", "Output", "Size", "Reason"},
		rows,
		[]display.Align{display.AlignLeft, display.AlignLeft, display.AlignLeft, display.AlignRight, display.AlignLeft},
	)
}

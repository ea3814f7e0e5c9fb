package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/backmassage/audiobatch/internal/display"
	"github.com/backmassage/audiobatch/internal/logging"
	"github.com/backmassage/audiobatch/internal/source"
	"github.com/backmassage/audiobatch/internal/term"
)

// fileRow holds the probed per-file data for the analysis table.
type fileRow struct {
	Name       string
	Codec      string
	SampleRate int
	Channels   int
	Kbps       int64
	Duration   time.Duration
}

// AnalyzeReport is the outcome of Analyze.
type AnalyzeReport struct {
	Probed        int
	Skipped       int
	TotalDuration time.Duration
	Outliers      int
	Extremes      int
	// SampleRates counts inputs per sample rate. More than one key means
	// merge will resample some inputs.
	SampleRates map[int]int
}

// Analyze probes each file and prints a codec/bitrate/duration table with
// IQR-based bitrate outlier flags. Files that fail to probe are skipped
// with a warning. Nothing is written.
func Analyze(ctx context.Context, files []source.File, prober Prober, log *logging.Logger) (*AnalyzeReport, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	total := len(files)
	log.Info("Analyzing %d files …", total)

	isTTY := term.IsTerminal(os.Stdout)
	report := &AnalyzeReport{SampleRates: make(map[int]int)}
	var rows []fileRow
	var kbpsVals []float64

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			if isTTY {
				clearProgress()
			}
			return nil, err
		}

		printProgress(isTTY, i+1, total, report.Skipped, f.Name)

		pr, err := prober.Probe(ctx, f.Path)
		if err != nil || !pr.HasAudio() {
			report.Skipped++
			if isTTY {
				clearProgress()
			}
			log.Warn("Skip (no readable audio): %s", f.Name)
			continue
		}

		a := pr.AudioStreams[0]
		kbps := a.BitRate / 1000
		if kbps <= 0 {
			kbps = pr.Format.BitRate / 1000
		}
		row := fileRow{
			Name:       f.Name,
			Codec:      a.Codec,
			SampleRate: a.SampleRate,
			Channels:   a.Channels,
			Kbps:       kbps,
			Duration:   pr.Duration(),
		}
		rows = append(rows, row)
		report.TotalDuration += row.Duration
		report.SampleRates[row.SampleRate]++
		if row.Kbps > 0 {
			kbpsVals = append(kbpsVals, float64(row.Kbps))
		}
	}

	if isTTY {
		clearProgress()
	}

	report.Probed = len(rows)
	if len(rows) == 0 {
		log.Warn("No files could be probed")
		return report, nil
	}

	stats := computeStats(kbpsVals)
	log.Plain(analysisTable(rows, stats) + "\n")
	for _, r := range rows {
		switch stats.classify(float64(r.Kbps)) {
		case "extreme":
			report.Extremes++
		case "outlier":
			report.Outliers++
		}
	}
	printAnalysisSummary(log, report, stats)
	return report, nil
}

// iqrBounds holds the IQR-based thresholds for outlier classification.
type iqrBounds struct {
	q1, q3    float64
	outlierLo float64 // Q1 - 1.5*IQR
	outlierHi float64 // Q3 + 1.5*IQR
	extremeLo float64 // Q1 - 3.0*IQR
	extremeHi float64 // Q3 + 3.0*IQR
	valid     bool
}

func computeStats(vals []float64) iqrBounds {
	if len(vals) < 4 {
		return iqrBounds{}
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	q1 := percentile(sorted, 25)
	q3 := percentile(sorted, 75)
	iqr := q3 - q1

	return iqrBounds{
		q1:        q1,
		q3:        q3,
		outlierLo: q1 - 1.5*iqr,
		outlierHi: q3 + 1.5*iqr,
		extremeLo: q1 - 3.0*iqr,
		extremeHi: q3 + 3.0*iqr,
		valid:     iqr > 0,
	}
}

// classify returns "" (normal), "outlier", or "extreme" for a value.
func (b *iqrBounds) classify(v float64) string {
	if !b.valid || v <= 0 {
		return ""
	}
	if v < b.extremeLo || v > b.extremeHi {
		return "extreme"
	}
	if v < b.outlierLo || v > b.outlierHi {
		return "outlier"
	}
	return ""
}

func analysisTable(rows []fileRow, stats iqrBounds) string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		rate := "n/a"
		if r.SampleRate > 0 {
			rate = fmt.Sprintf("%d Hz", r.SampleRate)
		}
		out = append(out, []string{
			display.Truncate(r.Name, 50),
			r.Codec,
			rate,
			fmt.Sprintf("%d", r.Channels),
			display.FormatBitrateLabel(r.Kbps),
			display.FormatDuration(r.Duration),
			formatFlag(stats.classify(float64(r.Kbps))),
		})
	}
	return display.RenderTable(
		[]string{"File", "Codec", "Rate", "Ch", "Bitrate", "Duration", ""},
		out,
		[]display.Align{display.AlignLeft, display.AlignLeft, display.AlignRight, display.AlignRight, display.AlignRight, display.AlignRight},
	)
}

func printAnalysisSummary(log *logging.Logger, report *AnalyzeReport, stats iqrBounds) {
	log.Info("Analyzed %d files, total duration %s", report.Probed, display.FormatDuration(report.TotalDuration))
	if stats.valid {
		log.Info("  Bitrate IQR: %.0f – %.0f kbps (outlier < %.0f or > %.0f)",
			stats.q1, stats.q3, stats.outlierLo, stats.outlierHi)
	}
	if len(report.SampleRates) > 1 {
		rates := make([]int, 0, len(report.SampleRates))
		for r := range report.SampleRates {
			rates = append(rates, r)
		}
		sort.Ints(rates)
		log.Warn("  Mixed sample rates %v; merge resamples everything to one rate", rates)
	}
	if report.Outliers > 0 {
		log.Warn("  %d outlier(s) flagged [*]", report.Outliers)
	}
	if report.Extremes > 0 {
		log.Error("  %d extreme outlier(s) flagged [!]", report.Extremes)
	}
	if report.Outliers == 0 && report.Extremes == 0 {
		log.Success("  No outliers detected")
	}
}

func formatFlag(flag string) string {
	switch flag {
	case "extreme":
		return term.Paint(term.RoleError, "[!]")
	case "outlier":
		return term.Paint(term.RoleWarn, "[*]")
	default:
		return ""
	}
}

// printProgress shows a live probe counter. On a TTY it writes an
// inline \r-overwritten line; otherwise it is a no-op.
func printProgress(isTTY bool, current, total, skipped int, name string) {
	if !isTTY {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Probing [%d/%d] %d%% ", current, total, pct)
	if skipped > 0 {
		status += fmt.Sprintf("(%d skipped) ", skipped)
	}
	status += display.Truncate(name, 40)

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stdout, "\r%s", status)
}

// clearProgress erases the inline progress line on a TTY.
func clearProgress() {
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
}

// percentile computes the p-th percentile using linear interpolation.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p / 100) * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi || hi >= len(sorted) {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

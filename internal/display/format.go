// Package display formats sizes, durations and tables for console output.
package display

import (
	"fmt"
	"time"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatDuration renders d as m:ss, or h:mm:ss from one hour up. Fractions
// of a second are truncated.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatBitrateLabel returns a short label for bitrate in kbps, "n/a" when
// unknown.
func FormatBitrateLabel(kbps int64) string {
	switch {
	case kbps <= 0:
		return "n/a"
	case kbps < 1000:
		return fmt.Sprintf("%d kbps", kbps)
	}
	return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
}

// Truncate shortens s to at most width runes, marking the cut with "…".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

package pipeline

import (
	"time"

	"github.com/backmassage/audiobatch/internal/source"
)

// Outcome is the final state of one item.
type Outcome string

const (
	OutcomeDone    Outcome = "done"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// ItemResult records what happened to one input.
type ItemResult struct {
	Source  source.File
	Output  string
	Outcome Outcome
	Size    int64 // Output bytes, when done.
	Elapsed time.Duration
	Err     error
}

// RunStats tracks per-item results and aggregate counters for a batch run.
// Items are in input order.
type RunStats struct {
	Total            int
	Done             int
	Failed           int
	Skipped          int
	TotalInputBytes  int64
	TotalOutputBytes int64
	Items            []ItemResult
}

func (s *RunStats) add(r ItemResult) {
	s.Items = append(s.Items, r)
	switch r.Outcome {
	case OutcomeDone:
		s.Done++
		s.TotalOutputBytes += r.Size
	case OutcomeFailed:
		s.Failed++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// Attempted is the number of items that reached the encoder or failed on
// the way to it.
func (s *RunStats) Attempted() int {
	return s.Done + s.Failed
}

// MergeResult describes a successful merge.
type MergeResult struct {
	Order    []source.File
	Output   string
	Duration time.Duration
	Size     int64
}

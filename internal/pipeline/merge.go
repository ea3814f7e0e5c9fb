package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/backmassage/audiobatch/internal/audio"
	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/display"
	"github.com/backmassage/audiobatch/internal/layout"
	"github.com/backmassage/audiobatch/internal/logging"
	"github.com/backmassage/audiobatch/internal/source"
)

// AudioCodec decodes inputs to canonical segments and exports a segment as
// MP3. *audio.Codec is the ffmpeg-backed implementation.
type AudioCodec interface {
	Decode(ctx context.Context, path string) (*audio.Segment, error)
	Export(ctx context.Context, seg *audio.Segment, path string) error
}

// Merger concatenates inputs into the fixed merged output.
type Merger struct {
	Layout layout.Layout
	Codec  AudioCodec
	Log    *logging.Logger
}

// Merge sorts files by name in order, prints the merge order, decodes and
// appends each file, and exports the result to the merged output path.
// Empty input returns ErrNoInput. The first decode failure returns an
// *ItemError and nothing is written.
func (m *Merger) Merge(ctx context.Context, files []source.File, order config.SortOrder) (*MergeResult, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}
	sorted := source.Sort(files, order)

	m.Log.Info("Merge order (%s):", orderLabel(order))
	for i, f := range sorted {
		m.Log.Info("  %d. %s", i+1, f.Name)
	}

	start := time.Now()
	var acc *audio.Segment
	for i, f := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.Log.Info("[%d/%d] Decoding %s", i+1, len(sorted), f.Name)
		seg, err := m.Codec.Decode(ctx, f.Path)
		if err != nil {
			return nil, &ItemError{Path: f.Path, Op: OpDecode, Err: err}
		}
		if acc == nil {
			acc = seg
			continue
		}
		if err := acc.Append(seg); err != nil {
			return nil, &ItemError{Path: f.Path, Op: OpDecode, Err: err}
		}
	}

	out := m.Layout.MergedOutputPath()
	if err := layout.EnsureParent(out); err != nil {
		return nil, err
	}
	m.Log.Info("Exporting %s of audio -> %s", display.FormatDuration(acc.Duration()), out)
	if err := m.Codec.Export(ctx, acc, out); err != nil {
		return nil, &ItemError{Path: out, Op: OpExport, Err: err}
	}

	res := &MergeResult{Order: sorted, Output: out, Duration: acc.Duration()}
	if fi, err := os.Stat(out); err == nil {
		res.Size = fi.Size()
	}
	m.Log.Success("Merged %d files in %ds: %s (%s, %s)",
		len(sorted), int(time.Since(start).Seconds()), out,
		display.FormatDuration(res.Duration), display.FormatBytes(res.Size))
	return res, nil
}

func orderLabel(order config.SortOrder) string {
	if order == config.SortDescending {
		return "descending"
	}
	return "ascending"
}

// Describe renders a merge failure for the log.
func Describe(err error) string {
	var ie *ItemError
	if errors.As(err, &ie) {
		return fmt.Sprintf("%s failed for %s: %s", ie.Op, ie.Path, Reason(err))
	}
	return err.Error()
}

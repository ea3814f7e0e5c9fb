package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/backmassage/audiobatch/internal/background"
	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/display"
	"github.com/backmassage/audiobatch/internal/ffmpeg"
	"github.com/backmassage/audiobatch/internal/layout"
	"github.com/backmassage/audiobatch/internal/logging"
	"github.com/backmassage/audiobatch/internal/probe"
	"github.com/backmassage/audiobatch/internal/source"
)

// Encoder renders audio over a still image into output. *ffmpeg.Encoder is
// the production implementation.
type Encoder interface {
	Encode(ctx context.Context, image, audio, output string) error
}

// Prober inspects an input before encoding. probe.Prober is the ffprobe
// implementation.
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.ProbeResult, error)
}

// Converter turns audio files into still-image videos.
type Converter struct {
	Layout  layout.Layout
	Encoder Encoder
	Prober  Prober // nil disables pre-flight validation
	Log     *logging.Logger

	Workers          int
	Retries          int
	ItemTimeout      time.Duration
	BackgroundWidth  int
	BackgroundHeight int
	Verbose          bool
}

// NewConverter wires cfg's batch settings. Validation is enabled when
// cfg.ValidateAudio is set.
func NewConverter(cfg *config.Config, lay layout.Layout, enc Encoder, log *logging.Logger) *Converter {
	c := &Converter{
		Layout:           lay,
		Encoder:          enc,
		Log:              log,
		Workers:          cfg.Workers,
		Retries:          cfg.Retries,
		ItemTimeout:      cfg.ItemTimeout,
		BackgroundWidth:  cfg.BackgroundWidth,
		BackgroundHeight: cfg.BackgroundHeight,
		Verbose:          cfg.Verbose,
	}
	if cfg.ValidateAudio {
		c.Prober = probe.Prober{Bin: cfg.FFprobeBin}
	}
	return c
}

// Convert encodes every file to <output>/<stem>.mp4. Empty input returns
// ErrNoInput; a background that cannot be provisioned aborts before any
// item runs. Otherwise the error is nil and per-item failures are in the
// returned stats. After ctx is cancelled, unstarted items are skipped.
func (c *Converter) Convert(ctx context.Context, files []source.File) (RunStats, error) {
	stats := RunStats{Total: len(files)}
	if len(files) == 0 {
		return stats, ErrNoInput
	}

	image := c.Layout.BackgroundPath()
	created, err := background.Ensure(image, c.BackgroundWidth, c.BackgroundHeight)
	if err != nil {
		return stats, err
	}
	if created {
		c.Log.Info("Created black %dx%d background: %s", c.BackgroundWidth, c.BackgroundHeight, image)
	} else {
		c.Log.Debug(c.Verbose, "Using background: %s", image)
	}

	c.Log.Info("Converting %d file(s) -> %s", len(files), c.Layout.OutputDir())

	results := make([]ItemResult, len(files))
	groups := c.groupByOutput(files)
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(groups) {
		workers = len(groups)
	}

	// A group is every input sharing one output path. A group runs on a
	// single worker in input order, so the later input always writes last
	// and no two encodes ever touch the same file at once.
	jobs := make(chan []int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for group := range jobs {
				for _, i := range group {
					results[i] = c.convertOne(ctx, i+1, len(files), files[i], image)
				}
			}
		}()
	}

	for _, group := range groups {
		if ctx.Err() != nil {
			for _, i := range group {
				results[i] = skipped(files[i], c.Layout.ConvertOutputPath(files[i]))
			}
			continue
		}
		jobs <- group
	}
	close(jobs)
	wg.Wait()

	for _, r := range results {
		if fi, err := os.Stat(r.Source.Path); err == nil {
			stats.TotalInputBytes += fi.Size()
		}
		stats.add(r)
	}
	return stats, nil
}

// groupByOutput claims every output path in input order, warns about
// collisions, and returns input indices grouped by output path. Groups are
// ordered by their first input.
func (c *Converter) groupByOutput(files []source.File) [][]int {
	claims := layout.NewClaimTracker()
	byOutput := make(map[string]int)
	var groups [][]int
	for i, f := range files {
		out := c.Layout.ConvertOutputPath(f)
		if prev, clash := claims.Claim(f.Path, out); clash {
			c.Log.Warn("Output collision: %s and %s both map to %s; the later one overwrites",
				prev, f.Path, out)
		}
		g, ok := byOutput[out]
		if !ok {
			g = len(groups)
			byOutput[out] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

func skipped(f source.File, out string) ItemResult {
	return ItemResult{Source: f, Output: out, Outcome: OutcomeSkipped, Err: context.Canceled}
}

// convertOne runs a single item: check the input, optionally validate it,
// encode with retries, and remove any partial output on failure.
func (c *Converter) convertOne(ctx context.Context, n, total int, f source.File, image string) ItemResult {
	out := c.Layout.ConvertOutputPath(f)
	if ctx.Err() != nil {
		return skipped(f, out)
	}
	c.Log.Info("[%d/%d] %s", n, total, f.Name)

	fail := func(op string, err error) ItemResult {
		ie := &ItemError{Path: f.Path, Op: op, Err: err}
		c.Log.Error("%s: %s (%s)", f.Name, op, Reason(ie))
		var fe *ffmpeg.Error
		if errors.As(err, &fe) {
			for _, line := range ffmpeg.TailLines(fe.Stderr, 5) {
				c.Log.Debug(c.Verbose, "  %s", line)
			}
		}
		return ItemResult{Source: f, Output: out, Outcome: OutcomeFailed, Err: ie}
	}

	fi, err := os.Stat(f.Path)
	if err != nil {
		return fail(OpOpen, err)
	}
	if !fi.Mode().IsRegular() {
		return fail(OpOpen, fmt.Errorf("%s is not a regular file", f.Path))
	}

	if c.Prober != nil {
		pr, err := c.Prober.Probe(ctx, f.Path)
		if err != nil {
			return fail(OpValidate, err)
		}
		if !pr.HasAudio() {
			return fail(OpValidate, ErrNoAudioStream)
		}
		c.Log.Debug(c.Verbose, "  %s, %s", pr.AudioStreams[0].Codec, display.FormatDuration(pr.Duration()))
	}

	if err := layout.EnsureParent(out); err != nil {
		return fail(OpEncode, err)
	}

	start := time.Now()
	rs := ffmpeg.NewRetryState(c.Retries)
	for {
		err := c.encode(ctx, image, f.Path, out)
		if err == nil {
			break
		}
		_ = os.Remove(out)
		if ctx.Err() != nil {
			c.Log.Warn("%s: interrupted", f.Name)
			return ItemResult{Source: f, Output: out, Outcome: OutcomeSkipped, Err: ctx.Err()}
		}
		if !rs.Advance(err) {
			return fail(OpEncode, err)
		}
		c.Log.Warn("%s: %s, retry %d/%d", f.Name, Reason(err), rs.Attempt, rs.MaxAttempts-1)
	}

	res := ItemResult{Source: f, Output: out, Outcome: OutcomeDone, Elapsed: time.Since(start)}
	if ofi, err := os.Stat(out); err == nil {
		res.Size = ofi.Size()
	}
	c.Log.Success("%s -> %s in %ds (%s)", f.Name, out, int(res.Elapsed.Seconds()), display.FormatBytes(res.Size))
	return res
}

func (c *Converter) encode(ctx context.Context, image, audio, out string) error {
	if c.ItemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.ItemTimeout)
		defer cancel()
	}
	return c.Encoder.Encode(ctx, image, audio, out)
}

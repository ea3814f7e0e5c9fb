package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/ffmpeg"
)

// Codec decodes and exports segments through ffmpeg in the canonical merge
// layout from config (44.1 kHz stereo by default), so every decoded segment
// can be appended to every other.
type Codec struct {
	cfg    *config.Config
	runner ffmpeg.Runner
}

// NewCodec returns a Codec for cfg.
func NewCodec(cfg *config.Config) *Codec {
	return &Codec{cfg: cfg, runner: ffmpeg.Runner{Verbose: cfg.Verbose}}
}

// Decode reads path fully into memory.
func (c *Codec) Decode(ctx context.Context, path string) (*Segment, error) {
	var pcm bytes.Buffer
	res := c.runner.Run(ctx, ffmpeg.BuildDecode(c.cfg, path), nil, &pcm)
	if err := ffmpeg.NewError(res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	seg := &Segment{
		SampleRate: c.cfg.MergeSampleRate,
		Channels:   c.cfg.MergeChannels,
		PCM:        pcm.Bytes(),
	}
	if seg.Frames() == 0 {
		return nil, fmt.Errorf("decode %s: no audio samples", filepath.Base(path))
	}
	return seg, nil
}

// Export encodes seg to an MP3 at path. The file is written under a
// temporary name in the same directory and renamed into place, so a failed
// export never leaves a partial file at path.
func (c *Codec) Export(ctx context.Context, seg *Segment, path string) error {
	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".part.mp3")
	res := c.runner.Run(ctx,
		ffmpeg.BuildExport(c.cfg, seg.SampleRate, seg.Channels, tmp),
		bytes.NewReader(seg.PCM), nil)
	if err := ffmpeg.NewError(res); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return nil
}

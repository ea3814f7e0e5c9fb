package ffmpeg

import (
	"context"

	"github.com/backmassage/audiobatch/internal/config"
)

// Encoder renders audio over a still image with one blocking ffmpeg call.
type Encoder struct {
	cfg    *config.Config
	runner Runner
}

// NewEncoder returns an Encoder using cfg's binary and codec settings.
func NewEncoder(cfg *config.Config) *Encoder {
	return &Encoder{cfg: cfg, runner: Runner{Verbose: cfg.Verbose}}
}

// Encode writes output from image and audio. A non-zero exit is returned
// as *Error.
func (e *Encoder) Encode(ctx context.Context, image, audio, output string) error {
	res := e.runner.Run(ctx, BuildConvert(e.cfg, image, audio, output), nil, nil)
	return NewError(res)
}

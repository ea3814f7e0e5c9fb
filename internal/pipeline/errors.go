package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/backmassage/audiobatch/internal/ffmpeg"
)

// Terminal conditions that end a run without processing anything.
var (
	ErrCancelled = errors.New("selection cancelled")
	ErrNoInput   = errors.New("no input files found")
)

// ErrNoAudioStream rejects an input whose probe found no audio.
var ErrNoAudioStream = errors.New("no audio stream")

// Item operations named in an ItemError.
const (
	OpOpen     = "open"
	OpValidate = "validate"
	OpDecode   = "decode"
	OpEncode   = "encode"
	OpExport   = "export"
)

// ItemError is a failure tied to one input file.
type ItemError struct {
	Path string
	Op   string
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, filepath.Base(e.Path), e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Reason returns the short, user-facing cause of err for logs and the
// summary table.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var fe *ffmpeg.Error
	switch {
	case errors.As(err, &fe):
		return fe.Reason
	case errors.Is(err, fs.ErrNotExist):
		return "input not found"
	case errors.Is(err, ErrNoAudioStream):
		return "no audio stream"
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	}
	var ie *ItemError
	if errors.As(err, &ie) {
		return ie.Err.Error()
	}
	return err.Error()
}

package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Runner executes ffmpeg argv slices. When Verbose is set, stderr is tee'd
// to os.Stderr in real time; otherwise it is captured silently for failure
// classification.
type Runner struct {
	Verbose bool
}

// Run executes args (binary first) with optional stdin and stdout. It
// blocks until the process exits; cancelling ctx kills the process.
func (r Runner) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) ExecResult {
	if len(args) == 0 {
		return ExecResult{Err: errors.New("ffmpeg: empty command")}
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout

	var stderrBuf bytes.Buffer
	if r.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

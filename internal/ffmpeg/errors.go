package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled regexes for classifying ffmpeg stderr output into short,
// user-facing failure reasons. Checked in order by [Classify]; the first
// match wins.
var stderrReasons = []struct {
	re        *regexp.Regexp
	reason    string
	permanent bool
}{
	{regexp.MustCompile(`No such file or directory`), "input not found", true},
	{regexp.MustCompile(`Permission denied`), "permission denied", true},
	{regexp.MustCompile(`No space left on device`), "disk full", false},
	{regexp.MustCompile(`(?i)Unknown encoder|Encoder not found|Unrecognized option`), "encoder unavailable", true},
	{regexp.MustCompile(`(?i)does not contain any stream|matches no streams|Output file .* does not contain`), "no audio stream", true},
	{regexp.MustCompile(`(?i)Invalid data found when processing input|could not find codec parameters|Header missing|Format .* detected only with low score`), "invalid or corrupt audio", true},
	{regexp.MustCompile(`(?i)Cannot allocate memory|Resource temporarily unavailable`), "out of resources", false},
}

// Error is a failed ffmpeg invocation with its captured stderr.
type Error struct {
	Reason string // Short classification, e.g. "invalid or corrupt audio".
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ffmpeg: %s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Permanent reports whether re-running the same command cannot succeed.
func (e *Error) Permanent() bool {
	_, permanent := classify(e.Stderr, e.Err)
	return permanent
}

// NewError builds an Error from a failed ExecResult, or returns nil when
// the result succeeded.
func NewError(res ExecResult) error {
	if res.Err == nil {
		return nil
	}
	reason, _ := classify(res.Stderr, res.Err)
	return &Error{Reason: reason, Stderr: res.Stderr, Err: res.Err}
}

// Classify returns the short reason for a failure's stderr.
func Classify(stderr string) string {
	reason, _ := classify(stderr, nil)
	return reason
}

func classify(stderr string, err error) (reason string, permanent bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out", false
	case errors.Is(err, context.Canceled):
		return "interrupted", true
	}
	for _, r := range stderrReasons {
		if r.re.MatchString(stderr) {
			return r.reason, r.permanent
		}
	}
	if err != nil && strings.Contains(err.Error(), "executable file not found") {
		return "ffmpeg not found", true
	}
	return "encoder exited with an error", false
}

// TailLines returns the last n non-empty lines of stderr.
func TailLines(stderr string, n int) []string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return nil
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

package ffmpeg

import "errors"

// RetryState tracks re-attempts of a single encode. MaxAttempts counts the
// first run, so Retries=0 means exactly one attempt.
type RetryState struct {
	Attempt     int
	MaxAttempts int
}

// NewRetryState allows retries re-attempts after the first run.
func NewRetryState(retries int) *RetryState {
	if retries < 0 {
		retries = 0
	}
	return &RetryState{MaxAttempts: retries + 1}
}

// Advance records a failed attempt and reports whether another one should
// be made. Permanent failures (missing input, corrupt audio, missing
// encoder, interruption) are never retried.
func (s *RetryState) Advance(err error) bool {
	s.Attempt++
	if s.Attempt >= s.MaxAttempts {
		return false
	}
	var fe *Error
	if errors.As(err, &fe) && fe.Permanent() {
		return false
	}
	return true
}

package layout

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockName = ".audiobatch.lock"

// ErrLocked is returned by Lock when another run holds the output directory.
var ErrLocked = errors.New("output directory is in use by another run")

// RunLock is an advisory lock on the output directory.
type RunLock struct {
	fl *flock.Flock
}

// Lock creates the output directory if needed and takes a non-blocking
// exclusive lock on it. Call only after inputs have been resolved, so a
// cancelled selection never creates the directory.
func (l Layout) Lock() (*RunLock, error) {
	path := filepath.Join(l.OutputDir(), lockName)
	if err := EnsureParent(path); err != nil {
		return nil, err
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &RunLock{fl: fl}, nil
}

// Unlock releases the lock. The lock file itself is left in place.
func (r *RunLock) Unlock() error {
	if r == nil || r.fl == nil {
		return nil
	}
	return r.fl.Unlock()
}

package layout

import "sync"

// ClaimTracker records which input owns each output path within one run.
// All methods are goroutine-safe.
type ClaimTracker struct {
	mu     sync.Mutex
	owners map[string]string // output path → input path that owns it
}

// NewClaimTracker creates a ready-to-use tracker.
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{owners: make(map[string]string)}
}

// Claim assigns output to input. When a different input already claimed
// output, the claim moves to input and the previous owner is returned with
// clash=true; the caller reports the overwrite.
func (ct *ClaimTracker) Claim(input, output string) (previous string, clash bool) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	owner, exists := ct.owners[output]
	ct.owners[output] = input
	if !exists || owner == input {
		return "", false
	}
	return owner, true
}

package naming

import (
	"path/filepath"
	"sync"
)

// CollisionTracker remembers which source claimed each output path during a
// batch, so the converter can warn when a later source writes over the
// output of an earlier one (e.g. "a/x.fnt" and "b/x.fnt" both becoming
// "x.fnt"). All methods are goroutine-safe.
type CollisionTracker struct {
	mu     sync.Mutex
	owners map[string]string // cleaned output path → source that claimed it
}

// NewCollisionTracker creates a ready-to-use tracker.
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{owners: make(map[string]string)}
}

// Claim records source as the writer of output. It returns the source that
// claimed the same output earlier in the batch, or "" when output is new
// (or was claimed by source itself).
func (ct *CollisionTracker) Claim(source, output string) string {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	key := filepath.Clean(output)
	prev, exists := ct.owners[key]
	ct.owners[key] = source
	if !exists || prev == source {
		return ""
	}
	return prev
}

package tracker

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/slidecast-io/slidecast/internal/logger"
)

// Tracker records every transient artifact created during a run so that
// intermediates can be swept once the final output is durably written.
// Registration is append-only and safe for concurrent use; nothing is
// removed before Finalize, and a run that fails before Finalize leaves
// its intermediates on disk for postmortem inspection.
type Tracker struct {
	mu     sync.Mutex
	paths  []string
	logger logger.Logger
}

// New creates an empty Tracker.
func New(log logger.Logger) *Tracker {
	return &Tracker{logger: log}
}

// Track registers an artifact path in creation order.
func (t *Tracker) Track(path string) {
	if path == "" {
		return
	}
	t.mu.Lock()
	t.paths = append(t.paths, path)
	t.mu.Unlock()
}

// Tracked returns a snapshot of the registered paths in creation order.
func (t *Tracker) Tracked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Finalize deletes every tracked path not listed as essential, in
// reverse creation order so directories registered before their contents
// empty out before their own removal. Each deletion failure is logged
// and collected but never stops the sweep; cleanup is best-effort and
// failures do not affect run success.
func (t *Tracker) Finalize(ctx context.Context, essential map[string]struct{}) []error {
	var failures []error

	tracked := t.Tracked()
	for i := len(tracked) - 1; i >= 0; i-- {
		path := tracked[i]
		if _, keep := essential[path]; keep {
			continue
		}
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			t.logger.Warn(ctx, "Failed to remove intermediate %s: %v", path, err)
			failures = append(failures, fmt.Errorf("remove %s: %w", path, err))
			continue
		}
		t.logger.Debug(ctx, "Removed intermediate: %s", path)
	}

	return failures
}

package booking

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

// LivenessTracker records a last-seen instant per participant,
// refreshed by every authenticated request (heartbeats, holds, sync
// calls).  A background sweep evicts participants whose silence
// exceeds the liveness timeout and cascades the release of their
// holds, so seats are never stranded in held by a client that
// vanished without cancelling.
//
// The timeout must exceed the sweep interval.  It is shorter than
// the hold duration on purpose: a holder that stops heartbeating is
// evicted and its holds released before they would expire on their
// own.
type LivenessTracker struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	timeout  time.Duration
	now      func() time.Time
}

// NewLivenessTracker builds a tracker with the given silence timeout.
// The clock function defaults to time.Now.
func NewLivenessTracker(timeout time.Duration, now func() time.Time) *LivenessTracker {
	if now == nil {
		now = time.Now
	}
	return &LivenessTracker{
		lastSeen: make(map[string]time.Time),
		timeout:  timeout,
		now:      now,
	}
}

// Touch refreshes the participant's last-seen instant, creating the
// entry on first activity.
func (t *LivenessTracker) Touch(user string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen[user] = t.now()
}

// LastSeen returns the participant's last-seen instant, if tracked.
func (t *LivenessTracker) LastSeen(user string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ts, ok := t.lastSeen[user]
	return ts, ok
}

// EvictStale removes every participant whose silence exceeds the
// timeout and invokes onEvict for each, outside the tracker's lock so
// the callback may take seat locks freely.  Returns the evicted
// users.  A callback that panics is contained so one bad entry cannot
// abort the sweep pass.
func (t *LivenessTracker) EvictStale(onEvict func(user string)) []string {
	t.mu.Lock()
	now := t.now()
	var stale []string
	for u, seen := range t.lastSeen {
		if now.Sub(seen) > t.timeout {
			stale = append(stale, u)
		}
	}
	for _, u := range stale {
		delete(t.lastSeen, u)
	}
	t.mu.Unlock()

	sort.Strings(stale)
	for _, u := range stale {
		if onEvict != nil {
			evictSafely(onEvict, u)
		}
	}
	return stale
}

// Run executes the eviction sweep at a fixed interval until the
// context is cancelled.  It is the process's only background task and
// must never crash it.
func (t *LivenessTracker) Run(ctx context.Context, interval time.Duration, onEvict func(user string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.EvictStale(onEvict)
		}
	}
}

func evictSafely(onEvict func(user string), user string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[liveness] eviction callback for %q panicked: %v", user, r)
		}
	}()
	onEvict(user)
}

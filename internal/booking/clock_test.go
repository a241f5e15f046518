package booking

import (
	"sync"
	"time"
)

// fakeClock is a hand-advanced clock shared by the engine tests so
// hold expiry and liveness eviction are deterministic.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// gateStub satisfies Gate with a fixed answer, for tests that pin the
// readiness gate open or closed.
type gateStub bool

func (g gateStub) Ready() bool { return bool(g) }

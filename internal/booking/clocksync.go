// Package booking implements the in-memory booking coordination
// engine: the seat lifecycle state machine, time-bounded holds,
// heartbeat-driven liveness eviction and the Berkeley-style clock
// synchronization that gates all seat operations.
package booking

import (
	"sync"
	"time"
)

// SyncResult is the outcome of one synchronization round, reported
// back to the calling participant.
//
// Fields:
//  ServerTime   – the server's raw clock reading (epoch seconds).
//  AvgOffset    – average offset of all announced clocks from the server.
//  YourAdjust   – signed correction the caller should apply to its own
//                 clock to land on the common instant ServerTime+AvgOffset.
//  Participants – number of participants included in the average.
type SyncResult struct {
	ServerTime   float64
	AvgOffset    float64
	YourAdjust   float64
	Participants int
}

// Coordinator collects per-user announced clock readings and derives
// a common synchronized instant using a Berkeley-style average.  It
// has two states: not ready (initial) and ready (terminal).  Once the
// first synchronization succeeds the coordinator stays ready for the
// process lifetime, even if every participant is later evicted.
//
// Announced readings are retained across rounds rather than cleared,
// so participants that join later are reconciled against the full
// history; eviction via Forget is the only removal path.
type Coordinator struct {
	mu        sync.Mutex
	ready     bool
	lastSync  time.Time
	announced map[string]float64
	now       func() time.Time
}

// NewCoordinator returns a not-ready coordinator.  The clock function
// may be nil, in which case time.Now is used.
func NewCoordinator(now func() time.Time) *Coordinator {
	if now == nil {
		now = time.Now
	}
	return &Coordinator{
		announced: make(map[string]float64),
		now:       now,
	}
}

// Sync records the participant's announced local clock reading and
// runs one synchronization round over the whole announced set.
//
// With a single announcer the round trivially succeeds with a zero
// offset: the lone client is defined to already match the server.
// Otherwise each participant's offset from the server is averaged
// with a divisor of count+1, which folds the server in as an implicit
// zero-offset member and biases the result toward the server's own
// clock.  Either way the coordinator transitions to ready.
func (c *Coordinator) Sync(user string, clientTime float64) SyncResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.announced[user] = clientTime
	serverTime := epochSeconds(c.now())

	if len(c.announced) == 1 {
		c.ready = true
		c.lastSync = c.now()
		return SyncResult{ServerTime: serverTime, Participants: 1}
	}

	total := 0.0
	offsets := make(map[string]float64, len(c.announced))
	for u, announced := range c.announced {
		off := announced - serverTime
		offsets[u] = off
		total += off
	}
	avg := total / float64(len(offsets)+1)

	c.ready = true
	c.lastSync = c.now()
	return SyncResult{
		ServerTime:   serverTime,
		AvgOffset:    avg,
		YourAdjust:   avg - offsets[user],
		Participants: len(offsets),
	}
}

// Ready reports whether a first synchronization has completed.  The
// hold manager consults this before every seat operation.
func (c *Coordinator) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Forget drops the participant's announced reading.  Called by the
// liveness sweeper when a participant is evicted.  Readiness is not
// affected.
func (c *Coordinator) Forget(user string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.announced, user)
}

// LastSync returns the server instant of the most recent successful
// synchronization, zero if none has happened yet.
func (c *Coordinator) LastSync() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSync
}

// epochSeconds converts an instant to fractional Unix seconds, the
// unit clients announce their clocks in.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/model"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/repository"
)

func TestEvictStaleRemovesSilentUsers(t *testing.T) {
	clock := newFakeClock()
	tr := NewLivenessTracker(20*time.Second, clock.Now)

	tr.Touch("alice")
	clock.Advance(15 * time.Second)
	tr.Touch("bob")
	clock.Advance(10 * time.Second) // alice silent 25s, bob 10s

	evicted := tr.EvictStale(nil)
	assert.Equal(t, []string{"alice"}, evicted)

	_, ok := tr.LastSeen("alice")
	assert.False(t, ok)
	_, ok = tr.LastSeen("bob")
	assert.True(t, ok)
}

func TestHeartbeatPreventsEviction(t *testing.T) {
	clock := newFakeClock()
	tr := NewLivenessTracker(20*time.Second, clock.Now)

	tr.Touch("alice")
	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Second)
		tr.Touch("alice")
	}
	assert.Empty(t, tr.EvictStale(nil))
}

func TestEvictionCascadesHoldRelease(t *testing.T) {
	clock := newFakeClock()
	registry := repository.NewSeatRegistry("A", 3)
	coord := NewCoordinator(clock.Now)
	tr := NewLivenessTracker(20*time.Second, clock.Now)
	m := NewHoldManager(registry, coord, tr, 30*time.Second, clock.Now)

	coord.Sync("alice", epochSeconds(clock.Now()))
	_, err := m.Acquire("A1", "alice")
	require.NoError(t, err)

	// Alice vanishes without cancelling.
	clock.Advance(25 * time.Second)
	evicted := tr.EvictStale(func(user string) {
		coord.Forget(user)
		m.ReleaseAllOwnedBy(user)
	})
	require.Equal(t, []string{"alice"}, evicted)

	seats, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, model.SeatAvailable, seats[0].Status)
	assert.True(t, coord.Ready(), "readiness survives the last participant leaving")

	// The seat is immediately acquirable by someone else.
	_, err = m.Acquire("A1", "bob")
	assert.NoError(t, err)
}

func TestEvictCallbackPanicDoesNotAbortSweep(t *testing.T) {
	clock := newFakeClock()
	tr := NewLivenessTracker(20*time.Second, clock.Now)

	tr.Touch("alice")
	tr.Touch("bob")
	clock.Advance(30 * time.Second)

	var seen []string
	evicted := tr.EvictStale(func(user string) {
		seen = append(seen, user)
		panic("bad entry")
	})

	assert.ElementsMatch(t, []string{"alice", "bob"}, evicted)
	assert.ElementsMatch(t, []string{"alice", "bob"}, seen, "a panicking callback must not skip later evictions")

	_, ok := tr.LastSeen("alice")
	assert.False(t, ok)
}

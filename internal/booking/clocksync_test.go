package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSingleParticipantAlignsWithServer(t *testing.T) {
	clock := newFakeClock()
	c := NewCoordinator(clock.Now)

	require.False(t, c.Ready())

	res := c.Sync("alice", 1_700_000_000)

	assert.Equal(t, 1, res.Participants)
	assert.Zero(t, res.AvgOffset, "a lone client is defined to already match the server")
	assert.Zero(t, res.YourAdjust)
	assert.Equal(t, epochSeconds(clock.Now()), res.ServerTime)
	assert.True(t, c.Ready())
	assert.Equal(t, clock.Now(), c.LastSync())
}

func TestSyncTwoParticipantAverage(t *testing.T) {
	clock := newFakeClock()
	c := NewCoordinator(clock.Now)
	s := epochSeconds(clock.Now())

	t1 := s + 6 // alice runs 6s fast
	t2 := s - 3 // bob runs 3s slow

	c.Sync("alice", t1)
	res := c.Sync("bob", t2)

	// Server joins the average as an implicit zero-offset member,
	// hence the divisor of 3 for two announced clocks.
	wantAvg := ((t1 - s) + (t2 - s)) / 3
	require.Equal(t, 2, res.Participants)
	assert.Equal(t, wantAvg, res.AvgOffset)
	assert.Equal(t, wantAvg-(t2-s), res.YourAdjust)
	assert.Equal(t, s, res.ServerTime)
}

func TestSyncRetainsAnnouncedHistory(t *testing.T) {
	clock := newFakeClock()
	c := NewCoordinator(clock.Now)
	s := epochSeconds(clock.Now())

	c.Sync("alice", s+10)

	// Bob joins a later round; alice's reading still influences it.
	res := c.Sync("bob", s+1)
	assert.Equal(t, 2, res.Participants)

	// Alice re-announcing overwrites rather than duplicates.
	res = c.Sync("alice", s+2)
	assert.Equal(t, 2, res.Participants)
}

func TestReadyNeverReverts(t *testing.T) {
	clock := newFakeClock()
	c := NewCoordinator(clock.Now)

	c.Sync("alice", epochSeconds(clock.Now()))
	require.True(t, c.Ready())

	c.Forget("alice")
	assert.True(t, c.Ready(), "eviction of every participant must not close the gate")
}

func TestForgetRemovesReadingFromAverage(t *testing.T) {
	clock := newFakeClock()
	c := NewCoordinator(clock.Now)
	s := epochSeconds(clock.Now())

	c.Sync("alice", s+30)
	c.Sync("bob", s)
	c.Forget("alice")

	res := c.Sync("bob", s)
	assert.Equal(t, 1, res.Participants, "forgotten reading must drop out of the set")
	assert.Zero(t, res.AvgOffset)
}

func TestEpochSecondsRoundTrips(t *testing.T) {
	at := time.Date(2026, 9, 1, 10, 0, 0, 500_000_000, time.UTC)
	assert.InDelta(t, float64(at.Unix())+0.5, epochSeconds(at), 1e-6)
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/model"
)

func TestNewSeatRegistryBuildsFixedSet(t *testing.T) {
	r := NewSeatRegistry("A", 12)

	ids := r.IDs()
	require.Len(t, ids, 12)
	assert.Equal(t, "A1", ids[0])
	assert.True(t, r.Contains("A12"))
	assert.False(t, r.Contains("B1"))

	require.NoError(t, r.Lock("A5"))
	status, err := r.Status("A5")
	r.Unlock("A5")
	require.NoError(t, err)
	assert.Equal(t, model.SeatAvailable, status)
}

func TestTryLockIsExclusivePerSeat(t *testing.T) {
	r := NewSeatRegistry("A", 3)

	require.NoError(t, r.TryLock("A1"))
	assert.ErrorIs(t, r.TryLock("A1"), ErrSeatBusy)

	// A different seat never contends.
	require.NoError(t, r.TryLock("A2"))
	r.Unlock("A2")

	r.Unlock("A1")
	require.NoError(t, r.TryLock("A1"))
	r.Unlock("A1")
}

func TestLockUnknownSeat(t *testing.T) {
	r := NewSeatRegistry("A", 2)

	assert.ErrorIs(t, r.TryLock("Z9"), ErrSeatNotFound)
	assert.ErrorIs(t, r.Lock("Z9"), ErrSeatNotFound)

	_, err := r.Status("Z9")
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestTrySetStatusComparesCurrent(t *testing.T) {
	r := NewSeatRegistry("A", 1)

	require.NoError(t, r.Lock("A1"))
	defer r.Unlock("A1")

	assert.False(t, r.TrySetStatus("A1", model.SeatHeld, model.SeatBooked), "wrong expected status must not swap")
	assert.True(t, r.TrySetStatus("A1", model.SeatAvailable, model.SeatHeld))

	status, err := r.Status("A1")
	require.NoError(t, err)
	assert.Equal(t, model.SeatHeld, status)

	assert.False(t, r.TrySetStatus("A1", model.SeatAvailable, model.SeatBooked))
	assert.False(t, r.TrySetStatus("Z9", model.SeatAvailable, model.SeatHeld))
}

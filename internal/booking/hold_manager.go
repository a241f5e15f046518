package booking

import (
	"sync"
	"time"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/model"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/repository"
)

// Gate is the readiness precondition consulted before every seat
// operation.  It is satisfied by the clock-sync Coordinator.
type Gate interface {
	Ready() bool
}

// HoldManager owns the hold record per seat and is the only writer of
// seat status.  Every operation runs inside the seat's exclusive
// section from the registry; hold and confirm take it non-blocking
// and fail fast with ErrSeatBusy under contention, while cancel and
// the liveness cascade wait for it.  Expired holds are reclaimed
// lazily on access and by the periodic SweepExpired pass rather than
// by per-hold timers, so a hold can sit logically expired between
// accesses for a bounded window.
type HoldManager struct {
	registry *repository.SeatRegistry
	gate     Gate
	liveness *LivenessTracker

	mu    sync.RWMutex // guards the holds map structure
	holds map[string]*model.Hold

	holdFor time.Duration
	now     func() time.Time
}

// NewHoldManager constructs a HoldManager.  registry and gate must be
// non-nil; liveness may be nil in tests that do not exercise
// last-seen tracking.  The clock function defaults to time.Now.
func NewHoldManager(registry *repository.SeatRegistry, gate Gate, liveness *LivenessTracker, holdFor time.Duration, now func() time.Time) *HoldManager {
	if registry == nil || gate == nil {
		panic("nil dependency passed to NewHoldManager")
	}
	if now == nil {
		now = time.Now
	}
	return &HoldManager{
		registry: registry,
		gate:     gate,
		liveness: liveness,
		holds:    make(map[string]*model.Hold),
		holdFor:  holdFor,
		now:      now,
	}
}

// Acquire places or refreshes a hold on a seat for the given user and
// returns the remaining hold duration.  A repeat acquire by the
// current owner extends the expiry to a full hold duration instead of
// failing, so clients keep a hold alive by re-requesting the seat.
// Failure modes: ErrSyncPending, ErrSeatNotFound, ErrSeatBusy,
// ErrAlreadyBooked, ErrHeldByOther.
func (m *HoldManager) Acquire(seatID, user string) (time.Duration, error) {
	if !m.gate.Ready() {
		return 0, repository.ErrSyncPending
	}
	m.touch(user)
	if err := m.registry.TryLock(seatID); err != nil {
		return 0, err
	}
	defer m.registry.Unlock(seatID)

	now := m.now()
	m.sweepSeatLocked(seatID, now)

	status, err := m.registry.Status(seatID)
	if err != nil {
		return 0, err
	}
	switch status {
	case model.SeatBooked:
		return 0, repository.ErrAlreadyBooked
	case model.SeatHeld:
		h := m.getHold(seatID)
		if h == nil || h.User != user {
			return 0, repository.ErrHeldByOther
		}
		m.setHold(seatID, &model.Hold{User: user, ExpiresAt: now.Add(m.holdFor)})
		return m.holdFor, nil
	default:
		m.setHold(seatID, &model.Hold{User: user, ExpiresAt: now.Add(m.holdFor)})
		m.registry.TrySetStatus(seatID, model.SeatAvailable, model.SeatHeld)
		return m.holdFor, nil
	}
}

// Confirm finalizes the caller's hold, booking the seat permanently.
// Failure modes: ErrSyncPending, ErrSeatNotFound, ErrSeatBusy,
// ErrNotHeld (seat not in held state), ErrForbidden (hold owned by
// someone else).
func (m *HoldManager) Confirm(seatID, user string) error {
	if !m.gate.Ready() {
		return repository.ErrSyncPending
	}
	m.touch(user)
	if err := m.registry.TryLock(seatID); err != nil {
		return err
	}
	defer m.registry.Unlock(seatID)

	m.sweepSeatLocked(seatID, m.now())

	status, err := m.registry.Status(seatID)
	if err != nil {
		return err
	}
	if status != model.SeatHeld {
		return repository.ErrNotHeld
	}
	h := m.getHold(seatID)
	if h == nil || h.User != user {
		return repository.ErrForbidden
	}
	m.registry.TrySetStatus(seatID, model.SeatHeld, model.SeatBooked)
	m.deleteHold(seatID)
	return nil
}

// Cancel releases the caller's hold and returns the seat to
// available.  Unlike Acquire and Confirm it waits for the seat's
// exclusive section instead of failing fast; a cancelling client has
// already decided to walk away, so bounding its latency matters less
// than making the release stick.  Failure modes: ErrSyncPending,
// ErrSeatNotFound, ErrForbidden (no hold, or hold owned by someone
// else).
func (m *HoldManager) Cancel(seatID, user string) error {
	if !m.gate.Ready() {
		return repository.ErrSyncPending
	}
	m.touch(user)
	if err := m.registry.Lock(seatID); err != nil {
		return err
	}
	defer m.registry.Unlock(seatID)

	h := m.getHold(seatID)
	if h == nil || h.User != user {
		return repository.ErrForbidden
	}
	m.deleteHold(seatID)
	m.registry.TrySetStatus(seatID, model.SeatHeld, model.SeatAvailable)
	return nil
}

// SweepExpired reclaims every seat whose hold has lapsed, returning
// the ids released.  Seats with an in-flight operation are skipped:
// that operation performs its own lazy sweep under the same lock.
// Safe to call repeatedly; a seat with no expired hold is a no-op.
func (m *HoldManager) SweepExpired() []string {
	now := m.now()
	var released []string
	for _, id := range m.registry.IDs() {
		if err := m.registry.TryLock(id); err != nil {
			continue
		}
		if m.sweepSeatLocked(id, now) {
			released = append(released, id)
		}
		m.registry.Unlock(id)
	}
	return released
}

// Snapshot reports the status of every seat after a lazy expiry
// sweep, including the holder and remaining hold seconds for held
// seats.  Fails with ErrSyncPending before the first synchronization.
func (m *HoldManager) Snapshot() ([]model.Seat, error) {
	if !m.gate.Ready() {
		return nil, repository.ErrSyncPending
	}
	m.SweepExpired()
	now := m.now()
	seats := make([]model.Seat, 0, len(m.registry.IDs()))
	for _, id := range m.registry.IDs() {
		if err := m.registry.Lock(id); err != nil {
			continue
		}
		status, _ := m.registry.Status(id)
		entry := model.Seat{ID: id, Status: status}
		if status == model.SeatHeld {
			if h := m.getHold(id); h != nil {
				entry.HeldBy = h.User
				entry.HoldExpiresIn = int64(h.Remaining(now) / time.Second)
			}
		}
		m.registry.Unlock(id)
		seats = append(seats, entry)
	}
	return seats, nil
}

// ReleaseAllOwnedBy drops every hold owned by the given user and
// returns the freed seat ids.  Used by the liveness sweeper to
// cascade-release the holds of an evicted participant.  It takes each
// seat's exclusive section blocking, so a cascade can never race a
// concurrent confirm or cancel on the same seat.
func (m *HoldManager) ReleaseAllOwnedBy(user string) []string {
	var released []string
	for _, id := range m.registry.IDs() {
		if err := m.registry.Lock(id); err != nil {
			continue
		}
		if h := m.getHold(id); h != nil && h.User == user {
			m.deleteHold(id)
			m.registry.TrySetStatus(id, model.SeatHeld, model.SeatAvailable)
			released = append(released, id)
		}
		m.registry.Unlock(id)
	}
	return released
}

// sweepSeatLocked reclaims the seat's hold if it has lapsed.  The
// caller must hold the seat's exclusive section.  Reports whether a
// hold was released.
func (m *HoldManager) sweepSeatLocked(seatID string, now time.Time) bool {
	h := m.getHold(seatID)
	if h == nil || !h.Expired(now) {
		return false
	}
	m.deleteHold(seatID)
	m.registry.TrySetStatus(seatID, model.SeatHeld, model.SeatAvailable)
	return true
}

func (m *HoldManager) touch(user string) {
	if m.liveness != nil {
		m.liveness.Touch(user)
	}
}

func (m *HoldManager) getHold(seatID string) *model.Hold {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.holds[seatID]
}

func (m *HoldManager) setHold(seatID string, h *model.Hold) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holds[seatID] = h
}

func (m *HoldManager) deleteHold(seatID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.holds, seatID)
}

package repository

import (
    "fmt"
    "sort"
    "sync"

    "github.com/Nayanpawar03/Distributed-Event-Booking/internal/model"
)

// SeatRegistry stores the status of every seat together with one
// dedicated mutex per seat.  The seat set is fixed at construction
// and never grows or shrinks, so the map itself is read-only after
// New; the status inside each slot is mutated only while the slot's
// mutex is held.  The registry carries no business logic – transition
// legality is enforced by the hold manager, which is its only writer.
type SeatRegistry struct {
    seats map[string]*seatSlot
    ids   []string // sorted, for deterministic iteration
}

// seatSlot pairs a seat's status with its exclusive section.  The
// mutex doubles as the per-seat lock taken by every hold-manager
// operation, so operations on seat A and seat B never contend.
type seatSlot struct {
    mu     sync.Mutex
    status model.SeatStatus
}

// NewSeatRegistry builds a registry of count seats labelled
// row1..rowN (e.g. A1..A12), all available.
func NewSeatRegistry(row string, count int) *SeatRegistry {
    r := &SeatRegistry{seats: make(map[string]*seatSlot, count)}
    for i := 1; i <= count; i++ {
        id := fmt.Sprintf("%s%d", row, i)
        r.seats[id] = &seatSlot{status: model.SeatAvailable}
        r.ids = append(r.ids, id)
    }
    sort.Strings(r.ids)
    return r
}

// IDs returns every seat id in sorted order.  The returned slice must
// not be modified.
func (r *SeatRegistry) IDs() []string { return r.ids }

// Contains reports whether the seat id belongs to the fixed seat set.
func (r *SeatRegistry) Contains(id string) bool {
    _, ok := r.seats[id]
    return ok
}

// TryLock attempts to enter the seat's exclusive section without
// blocking.  It returns ErrSeatNotFound for unknown seats and
// ErrSeatBusy when another operation is in flight on the same seat.
func (r *SeatRegistry) TryLock(id string) error {
    slot, ok := r.seats[id]
    if !ok {
        return ErrSeatNotFound
    }
    if !slot.mu.TryLock() {
        return ErrSeatBusy
    }
    return nil
}

// Lock enters the seat's exclusive section, waiting if necessary.
// Returns ErrSeatNotFound for unknown seats.
func (r *SeatRegistry) Lock(id string) error {
    slot, ok := r.seats[id]
    if !ok {
        return ErrSeatNotFound
    }
    slot.mu.Lock()
    return nil
}

// Unlock leaves the seat's exclusive section.  Calling it for a seat
// that was never locked is a programming error and panics, same as a
// bare mutex.
func (r *SeatRegistry) Unlock(id string) {
    slot, ok := r.seats[id]
    if !ok {
        panic("seat registry: unlock of unknown seat " + id)
    }
    slot.mu.Unlock()
}

// Status returns the seat's current status.  The caller must hold the
// seat's exclusive section.
func (r *SeatRegistry) Status(id string) (model.SeatStatus, error) {
    slot, ok := r.seats[id]
    if !ok {
        return "", ErrSeatNotFound
    }
    return slot.status, nil
}

// TrySetStatus transitions the seat from expected to next and reports
// whether the swap happened.  The caller must hold the seat's
// exclusive section; the compare guards against logic bugs rather
// than races.
func (r *SeatRegistry) TrySetStatus(id string, expected, next model.SeatStatus) bool {
    slot, ok := r.seats[id]
    if !ok {
        return false
    }
    if slot.status != expected {
        return false
    }
    slot.status = next
    return true
}

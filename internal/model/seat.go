package model

// SeatStatus enumerates the lifecycle states of a seat.  A seat is
// created as available, transitions to held while a user has a
// temporary hold on it, and becomes booked once the hold is
// confirmed.  Booked is terminal: a booked seat never returns to
// held or available.
type SeatStatus string

const (
    SeatAvailable SeatStatus = "available" // no hold, open for acquisition
    SeatHeld      SeatStatus = "held"      // temporarily reserved by one user
    SeatBooked    SeatStatus = "booked"    // permanently reserved
)

// Seat describes the externally visible state of a single seat.  It is
// the payload returned by the seat listing endpoint.  HeldBy and
// HoldExpiresIn are populated only while Status is held.
//
// Fields:
//  ID            – opaque seat identifier (e.g. "A7").
//  Status        – current lifecycle state.
//  HeldBy        – user currently holding the seat, if any.
//  HoldExpiresIn – whole seconds until the hold lapses, never negative.
type Seat struct {
    ID            string     `json:"id"`
    Status        SeatStatus `json:"status"`
    HeldBy        string     `json:"held_by,omitempty"`
    HoldExpiresIn int64      `json:"hold_expires_in,omitempty"`
}

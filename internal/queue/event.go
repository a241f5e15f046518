// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatBookedEvent is published when a hold is successfully confirmed
// and the seat becomes permanently booked.  It carries enough
// information for downstream consumers to log or notify without
// touching the in-memory engine.
type SeatBookedEvent struct {
    SeatID      string `json:"seat_id"`
    User        string `json:"user"`
    ConfirmedAt string `json:"confirmed_at"`
}

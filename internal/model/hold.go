package model

import "time"

// Hold represents a temporary, exclusive claim on a seat by one user
// prior to final confirmation.  A hold exists if and only if its
// seat's status is held, and no seat ever carries more than one hold.
// Holds expire automatically at their ExpiresAt instant; expiry is
// enforced lazily on the next access rather than by a per-hold timer.
//
// Fields:
//  User      – identity of the holding user.
//  ExpiresAt – absolute instant at which the hold lapses.
type Hold struct {
    User      string
    ExpiresAt time.Time
}

// Expired reports whether the hold has lapsed at the given instant.
func (h Hold) Expired(now time.Time) bool {
    return !now.Before(h.ExpiresAt)
}

// Remaining returns the time left on the hold at the given instant,
// floored at zero so callers can report it directly to clients.
func (h Hold) Remaining(now time.Time) time.Duration {
    d := h.ExpiresAt.Sub(now)
    if d < 0 {
        return 0
    }
    return d
}

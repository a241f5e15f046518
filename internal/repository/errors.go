// Package repository defines error types that are reused across the
// storage and booking layers.  These sentinel values allow handlers
// to distinguish between failure scenarios and map each one onto a
// distinct HTTP status.  Every failure is request-local: an operation
// that returns one of these errors has left seat, hold and
// participant state exactly as it found them.
package repository

import "errors"

// ErrSeatNotFound is returned when an operation references a seat id
// outside the fixed seat set.  Handlers should translate this into an
// HTTP 404 response.
var ErrSeatNotFound = errors.New("seat not found")

// ErrAlreadyBooked is returned when a hold is attempted on a seat
// that has been permanently booked.  Maps to HTTP 409.
var ErrAlreadyBooked = errors.New("seat already booked")

// ErrHeldByOther is returned when a hold is attempted on a seat
// currently held by a different user.  Maps to HTTP 409.
var ErrHeldByOther = errors.New("seat held by someone else")

// ErrNotHeld is returned when a confirm targets a seat that carries
// no active hold.  Maps to HTTP 409.
var ErrNotHeld = errors.New("seat not held")

// ErrForbidden is returned when the caller attempts to confirm or
// cancel a hold owned by someone else.  Maps to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrSeatBusy is returned when the seat's exclusive section is held
// by another in-flight operation.  Hold and confirm fail fast instead
// of queueing so latency stays bounded under contention; the client
// is expected to retry.  Maps to HTTP 409.
var ErrSeatBusy = errors.New("seat busy")

// ErrSyncPending is returned by every seat-reading and seat-mutating
// operation before the first successful clock synchronization.  Maps
// to HTTP 403.
var ErrSyncPending = errors.New("clock synchronization pending")

// ErrUserExists is returned by the user store when the username or
// email is already taken.  Maps to HTTP 409.
var ErrUserExists = errors.New("username or email already exists")

// ErrInvalidCredentials is returned on login when the user is unknown
// or the password does not match.  Maps to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

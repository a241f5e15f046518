package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/booking"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/middleware"
)

// SyncHandler exposes the clock synchronization protocol and the
// heartbeat/whoami utility endpoints.  Sync and Heartbeat refresh the
// caller's liveness; Whoami is a pure read.
type SyncHandler struct {
	Coord     *booking.Coordinator
	Liveness  *booking.LivenessTracker
	JWTSecret string
}

// NewSyncHandler constructs a SyncHandler.  Coordinator and tracker
// must be non-nil.
func NewSyncHandler(coord *booking.Coordinator, liveness *booking.LivenessTracker, jwtSecret string) *SyncHandler {
	if coord == nil || liveness == nil {
		panic("nil dependency passed to NewSyncHandler")
	}
	return &SyncHandler{Coord: coord, Liveness: liveness, JWTSecret: jwtSecret}
}

// Sync handles POST /v1/sync.  The caller announces its local clock
// reading (epoch seconds) and receives the server instant, the
// average offset across all announced clocks and its own signed
// adjustment.  The first successful call opens the booking gate for
// the process lifetime.
func (h *SyncHandler) Sync(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		ClientTime *float64 `json:"client_time"`
	}
	if err := c.Bind(&body); err != nil || body.ClientTime == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_time missing"})
	}

	h.Liveness.Touch(user)
	res := h.Coord.Sync(user, *body.ClientTime)

	msg := fmt.Sprintf("synchronized %d users successfully", res.Participants)
	if res.Participants == 1 {
		msg = "only one user - time aligned with server"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":       "synced",
		"message":      msg,
		"server_time":  res.ServerTime,
		"avg_offset":   res.AvgOffset,
		"your_adjust":  res.YourAdjust,
		"participants": res.Participants,
	})
}

// Heartbeat handles POST /v1/heartbeat.  It refreshes the caller's
// last-seen instant so the liveness sweeper does not evict them and
// cascade-release their holds.
func (h *SyncHandler) Heartbeat(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Liveness.Touch(user)
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Whoami handles GET /v1/whoami.  It reports the identity behind the
// bearer token, or null when the caller is unauthenticated.  Pure
// read: it neither refreshes liveness nor touches any seat state.
func (h *SyncHandler) Whoami(c echo.Context) error {
	sub := middleware.ParseSubject(c, h.JWTSecret)
	if sub == "" {
		return c.JSON(http.StatusOK, echo.Map{"username": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"username": sub})
}

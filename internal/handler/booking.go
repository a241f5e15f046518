package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/booking"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/queue"
	queue_publisher "github.com/Nayanpawar03/Distributed-Event-Booking/internal/service"
)

// BookingHandler exposes the seat lifecycle over HTTP: listing,
// acquiring/refreshing holds, confirming and cancelling.  All methods
// assume JWT authentication has already run; the engine enforces the
// clock-sync readiness gate and per-seat exclusivity itself, so the
// handler's job is binding, identity extraction and status mapping.
type BookingHandler struct {
	Holds *booking.HoldManager
}

// NewBookingHandler constructs a BookingHandler.  The hold manager
// must be non-nil.
func NewBookingHandler(holds *booking.HoldManager) *BookingHandler {
	if holds == nil {
		panic("nil hold manager passed to NewBookingHandler")
	}
	return &BookingHandler{Holds: holds}
}

// GetSeats handles GET /v1/seats.  It returns every seat's status
// after a lazy expiry sweep; held seats include the holder and the
// remaining hold seconds.
func (h *BookingHandler) GetSeats(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	seats, err := h.Holds.Snapshot()
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": seats})
}

// HoldSeat handles POST /v1/seats/:id/hold.  It places a temporary
// hold on the seat for the current user, or extends the expiry when
// the user already holds it.  Returns the remaining hold seconds.
func (h *BookingHandler) HoldSeat(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	remaining, err := h.Holds.Acquire(c.Param("id"), user)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "ok",
		"message":    "seat held",
		"expires_in": int64(remaining / time.Second),
	})
}

// ConfirmSeat handles POST /v1/seats/:id/confirm.  It finalizes the
// caller's hold, booking the seat permanently, and publishes a
// booking.confirmed event.  Publishing is fire-and-forget: a broker
// outage must not undo a booking that already happened.
func (h *BookingHandler) ConfirmSeat(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	seatID := c.Param("id")
	if err := h.Holds.Confirm(seatID, user); err != nil {
		return bookingError(c, err)
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishSeatBooked(ctx, queue.SeatBookedEvent{
			SeatID:      seatID,
			User:        user,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": "seat booked",
	})
}

// CancelHold handles POST /v1/seats/:id/cancel.  It releases the
// caller's hold and returns the seat to available.
func (h *BookingHandler) CancelHold(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Holds.Cancel(c.Param("id"), user); err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": "hold cancelled",
	})
}

package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/Nayanpawar03/Distributed-Event-Booking/internal/repository"
)

// getUserID extracts the identity installed by the JWT middleware.
// Every booking operation requires it; absence means the middleware
// chain was misconfigured or the route is unprotected.
func getUserID(c echo.Context) (string, error) {
    if s, ok := c.Get("user_id").(string); ok && s != "" {
        return s, nil
    }
    return "", errors.New("unauthorized")
}

// bookingError translates an engine error into the HTTP response the
// API contract promises.  Every condition gets a distinct status so
// clients can react without parsing messages: the readiness gate and
// ownership failures are 403, unknown seats 404, and all state
// conflicts (booked, held by other, not held, busy) 409.
func bookingError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, repository.ErrSyncPending):
        return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrSeatNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "you do not hold this seat"})
    case errors.Is(err, repository.ErrSeatBusy),
        errors.Is(err, repository.ErrAlreadyBooked),
        errors.Is(err, repository.ErrHeldByOther),
        errors.Is(err, repository.ErrNotHeld):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
}

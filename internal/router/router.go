package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/config"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/handler"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes registers routes that require no authentication.
// The health check lets load balancers verify the service is up, and
// whoami reports the caller's identity (or null) without demanding a
// valid token.
func RegisterRoutes(e *echo.Echo, s *handler.SyncHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/whoami", s.Whoami)
}

// RegisterAuth registers the register/login endpoints under /v1/auth.
// Neither requires an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterBooking registers all JWT-protected endpoints under /v1:
// the seat lifecycle, the clock synchronization protocol and the
// heartbeat.  The Redis token-bucket limiter sits in front of the
// whole group; it degrades to a no-op when rdb is nil.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, s *handler.SyncHandler, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.NewTokenBucket(rlCfg, rdb),
	)
	g.GET("/seats", b.GetSeats)
	g.POST("/seats/:id/hold", b.HoldSeat)
	g.POST("/seats/:id/confirm", b.ConfirmSeat)
	g.POST("/seats/:id/cancel", b.CancelHold)
	g.POST("/sync", s.Sync)
	g.POST("/heartbeat", s.Heartbeat)
}

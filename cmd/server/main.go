package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/booking"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/config"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/database"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/handler"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/queue"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/repository"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/router"
)

// sweepExpiredLoop reclaims lapsed holds on a fixed interval.  Lazy
// on-access sweeps already cover actively used seats; this pass keeps
// expiry visible on seats nobody is touching.
func sweepExpiredLoop(ctx context.Context, interval time.Duration, holds *booking.HoldManager) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if released := holds.SweepExpired(); len(released) > 0 {
				log.Printf("[sweep] released expired holds %v", released)
			}
		}
	}
}

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Engine wiring: registry -> coordinator/liveness -> hold manager.
	registry := repository.NewSeatRegistry(cfg.SeatRow, cfg.SeatCount)
	coord := booking.NewCoordinator(nil)
	liveness := booking.NewLivenessTracker(cfg.LivenessTimeout, nil)
	holds := booking.NewHoldManager(registry, coord, liveness, cfg.HoldDuration, nil)

	// Background liveness sweeper: evicts silent users and cascades
	// the release of their holds and announced clock readings.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go liveness.Run(ctx, cfg.SweepInterval, func(user string) {
		coord.Forget(user)
		released := holds.ReleaseAllOwnedBy(user)
		log.Printf("[liveness] evicted %q, released seats %v", user, released)
	})
	go sweepExpiredLoop(ctx, cfg.SweepInterval, holds)

	// Background consumer logs confirmed bookings from the broker.
	go func() {
		if err := queue.StartBookedConsumer(); err != nil {
			log.Printf("booking-consumer: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	authH := handler.NewAuthHandler(cfg, users)
	bookH := handler.NewBookingHandler(holds)
	syncH := handler.NewSyncHandler(coord, liveness, cfg.JWTSecret)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.RegisterRoutes(e, syncH)
	router.RegisterAuth(e, authH)
	router.RegisterBooking(e, bookH, syncH, cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, seats=%s1..%s%d)", addr, cfg.Env, cfg.SeatRow, cfg.SeatRow, cfg.SeatCount)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

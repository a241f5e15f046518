package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time parses the booking duration tunables
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Required values are
// enforced by must(); the booking tunables fall back to the defaults
// the protocol was designed around.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    DBUser       string // database username
    DBPass       string // database password (optional)
    DBHost       string // database host address
    DBPort       string // database port number
    DBName       string // database name
    JWTSecret    string // secret used to sign JWTs
    AccessTTLMin int    // access token time‑to‑live in minutes
    BcryptCost   int    // bcrypt cost for password hashing

    SeatRow   string // row label for the fixed seat set
    SeatCount int    // number of seats in the row

    HoldDuration    time.Duration // how long a hold lives before lapsing
    LivenessTimeout time.Duration // silence after which a user is evicted
    SweepInterval   time.Duration // pause between liveness sweep passes
}

// Load reads configuration values from environment variables and
// returns a Config.  Missing required variables cause the program to
// exit with a fatal log message.  Load also enforces the sweep
// ordering constraint: the liveness timeout must exceed the sweep
// interval, or an actively heartbeating client could be evicted
// between passes.
func Load() Config {
    cfg := Config{
        Env:          must("APP_ENV"),                  // environment (dev/test/prod)
        Port:         must("APP_PORT"),                 // port to bind the HTTP server
        DBUser:       must("DB_USER"),                  // database user
        DBPass:       os.Getenv("DB_PASS"),             // database password (empty allowed)
        DBHost:       must("DB_HOST"),                  // database host
        DBPort:       must("DB_PORT"),                  // database port
        DBName:       must("DB_NAME"),                  // database name
        JWTSecret:    must("JWT_SECRET"),               // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),  // TTL for access tokens in minutes
        BcryptCost:   mustInt("BCRYPT_COST"),           // bcrypt cost factor

        SeatRow:   envStr("SEAT_ROW", "A"),
        SeatCount: envInt("SEAT_COUNT", 12),

        HoldDuration:    envDur("HOLD_DURATION", 30*time.Second),
        LivenessTimeout: envDur("LIVENESS_TIMEOUT", 20*time.Second),
        SweepInterval:   envDur("SWEEP_INTERVAL", 5*time.Second),
    }
    if cfg.SeatCount < 1 {
        log.Fatalf("SEAT_COUNT must be positive, got %d", cfg.SeatCount)
    }
    if cfg.LivenessTimeout <= cfg.SweepInterval {
        log.Fatalf("LIVENESS_TIMEOUT (%s) must exceed SWEEP_INTERVAL (%s)",
            cfg.LivenessTimeout, cfg.SweepInterval)
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

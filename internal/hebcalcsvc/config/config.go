// Package config loads the service layer's runtime configuration from
// environment variables, with a local .env file loaded first for
// development convenience.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting the service layer needs.
type Config struct {
	// HTTPAddr is the address the API server listens on.
	HTTPAddr string
	// DatabaseURL is the Postgres connection string for the audit store.
	DatabaseURL string
	// RedisURL is the Redis connection string for the schedule cache.
	RedisURL string
	// PrecomputeWorkers bounds how many years a bulk precompute request
	// resolves concurrently.
	PrecomputeWorkers int
	// PrecomputeYearStart/End define an inclusive Hebrew-year range to warm
	// the schedule cache for at startup; zero start disables precompute.
	PrecomputeYearStart uint32
	PrecomputeYearEnd   uint32
	// ScheduleCacheTTL is how long a resolved year's schedule stays cached.
	ScheduleCacheTTL time.Duration
	// CORSOrigins lists the origins the HTTP API allows; empty means "*".
	CORSOrigins []string
}

// Load reads .env (if present, ignored if absent) and then the process
// environment, applying defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:          getEnv("HEBCAL_HTTP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "postgres://localhost:5432/hebcal?sslmode=disable"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
		PrecomputeWorkers: 4,
		ScheduleCacheTTL:  24 * time.Hour,
	}

	if raw := os.Getenv("HEBCAL_PRECOMPUTE_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse HEBCAL_PRECOMPUTE_WORKERS: %w", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("HEBCAL_PRECOMPUTE_WORKERS must be positive, got %d", n)
		}
		cfg.PrecomputeWorkers = n
	}

	if raw := os.Getenv("HEBCAL_SCHEDULE_CACHE_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse HEBCAL_SCHEDULE_CACHE_TTL: %w", err)
		}
		cfg.ScheduleCacheTTL = d
	}

	if raw := os.Getenv("HEBCAL_CORS_ORIGINS"); raw != "" {
		cfg.CORSOrigins = splitCSV(raw)
	}

	if raw := os.Getenv("HEBCAL_PRECOMPUTE_YEAR_START"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse HEBCAL_PRECOMPUTE_YEAR_START: %w", err)
		}
		cfg.PrecomputeYearStart = uint32(n)
	}
	if raw := os.Getenv("HEBCAL_PRECOMPUTE_YEAR_END"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse HEBCAL_PRECOMPUTE_YEAR_END: %w", err)
		}
		cfg.PrecomputeYearEnd = uint32(n)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

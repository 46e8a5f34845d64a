// Package db manages the Postgres connection pool backing the audit store
// of resolved schedule-generation requests.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New connects to databaseURL and verifies connectivity before returning.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connection established")
	return &DB{Pool: pool}, nil
}

// Close releases the pool.
func (d *DB) Close() { d.Pool.Close() }

// EnsureSchema creates the schedule_generation_runs audit table if it does
// not already exist. Called once at startup rather than via a migration
// tool, matching the scale of this service's single audit table.
func (d *DB) EnsureSchema(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS schedule_generation_runs (
	id UUID PRIMARY KEY,
	year INTEGER NOT NULL,
	location TEXT NOT NULL,
	categories TEXT NOT NULL,
	cache_hit BOOLEAN NOT NULL,
	event_count INTEGER NOT NULL,
	response_time_ms INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RunEntry records one resolved schedule-generation request for the
// audit/history store.
type RunEntry struct {
	ID             uuid.UUID
	Year           int32
	Location       string
	Categories     string
	CacheHit       bool
	EventCount     int32
	ResponseTimeMs int32
}

// AuditLogger batches RunEntry writes through a buffered channel and a
// background worker, so logging a request never adds latency to the
// response that triggered it.
type AuditLogger struct {
	db            *DB
	buffer        chan RunEntry
	batchSize     int
	flushInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewAuditLogger starts the background flush worker.
func NewAuditLogger(db *DB) *AuditLogger {
	l := &AuditLogger{
		db:            db,
		buffer:        make(chan RunEntry, 1000),
		batchSize:     50,
		flushInterval: time.Second,
		stopChan:      make(chan struct{}),
	}
	l.wg.Add(1)
	go l.worker()
	return l
}

// Log enqueues an entry without blocking; a full buffer drops the entry
// rather than delaying the caller.
func (l *AuditLogger) Log(entry RunEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	select {
	case l.buffer <- entry:
	default:
		slog.Warn("audit log buffer full, dropping entry", "year", entry.Year, "location", entry.Location)
	}
}

// Close drains the buffer and stops the worker.
func (l *AuditLogger) Close() {
	close(l.stopChan)
	l.wg.Wait()
}

func (l *AuditLogger) worker() {
	defer l.wg.Done()

	batch := make([]RunEntry, 0, l.batchSize)
	ticker := time.NewTicker(l.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case entry := <-l.buffer:
			batch = append(batch, entry)
			if len(batch) >= l.batchSize {
				l.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				l.flush(batch)
				batch = batch[:0]
			}
		case <-l.stopChan:
			for len(l.buffer) > 0 {
				batch = append(batch, <-l.buffer)
			}
			if len(batch) > 0 {
				l.flush(batch)
			}
			return
		}
	}
}

func (l *AuditLogger) flush(batch []RunEntry) {
	if len(batch) == 0 {
		return
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.db.Pool.CopyFrom(
		ctx,
		pgx.Identifier{"schedule_generation_runs"},
		[]string{"id", "year", "location", "categories", "cache_hit", "event_count", "response_time_ms", "created_at"},
		pgx.CopyFromSlice(len(batch), func(i int) ([]any, error) {
			e := batch[i]
			return []any{
				e.ID, e.Year, e.Location, e.Categories, e.CacheHit, e.EventCount, e.ResponseTimeMs, time.Now(),
			}, nil
		}),
	)
	if err != nil {
		slog.Error("failed to flush audit log", "error", err, "count", len(batch), "duration_ms", time.Since(start).Milliseconds())
	}
}

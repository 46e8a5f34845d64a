// Command api serves the Hebrew calendar computation service over HTTP:
// date conversion, per-year event schedules, and daily-study listings.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/cache"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/config"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/db"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/httpapi"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/precompute"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	ctx := context.Background()

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	auditLogger := db.NewAuditLogger(database)
	defer auditLogger.Close()

	var redisCache *cache.Cache
	redisCache, err = cache.New(cfg.RedisURL, cfg.ScheduleCacheTTL)
	if err != nil {
		slog.Warn("redis cache disabled", "error", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	if redisCache != nil && cfg.PrecomputeYearStart > 0 {
		go func() {
			if err := precompute.Range(ctx, redisCache, cfg.PrecomputeYearStart, cfg.PrecomputeYearEnd, cfg.PrecomputeWorkers); err != nil {
				slog.Warn("precompute range failed", "error", err)
			}
		}()
	}

	svc := &httpapi.Service{Cache: redisCache, Audit: auditLogger}
	router := httpapi.NewRouter(svc, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	slog.Info("server exited")
}

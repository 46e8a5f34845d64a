// Package cache provides Redis-based caching of resolved year schedules
// and daily-study listings, so repeated requests for the same
// (year, location, categories) tuple skip re-running the event generator.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with the key scheme and TTL policy this
// service uses.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// Entry is a cached schedule or daily-study payload, timestamped so
// callers can tell how fresh it is.
type Entry struct {
	Data     json.RawMessage `json:"data"`
	CachedAt time.Time       `json:"cached_at"`
}

// New dials redisURL and verifies connectivity before returning.
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	provider := "Redis"
	if strings.Contains(redisURL, "upstash.io") {
		provider = "Upstash Redis"
	}
	slog.Info("cache connection established", "provider", provider, "host", opt.Addr)

	return &Cache{client: client, ttl: ttl}, nil
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error { return c.client.Close() }

// scheduleKey identifies a resolved schedule by year, location, and the
// exact set of requested categories (sorted and joined, so the key is
// stable regardless of request order).
func scheduleKey(year uint32, location string, categories []string) string {
	sorted := append([]string(nil), categories...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return fmt.Sprintf("schedule:%d:%s:%s", year, location, strings.Join(sorted, ","))
}

// dailyStudyKey identifies a resolved daily-study listing by year and the
// exact set of requested cycles (sorted, so the key is stable regardless
// of request order).
func dailyStudyKey(year uint32, categories []string) string {
	sorted := append([]string(nil), categories...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return fmt.Sprintf("dailystudy:%d:%s", year, strings.Join(sorted, ","))
}

// GetSchedule returns the cached schedule for a year/location/category
// set, or nil if absent.
func (c *Cache) GetSchedule(ctx context.Context, year uint32, location string, categories []string) (*Entry, error) {
	return c.get(ctx, scheduleKey(year, location, categories))
}

// SetSchedule caches a resolved schedule payload.
func (c *Cache) SetSchedule(ctx context.Context, year uint32, location string, categories []string, data interface{}) error {
	return c.set(ctx, scheduleKey(year, location, categories), data)
}

// GetDailyStudy returns the cached daily-study listing for a year and
// category set, or nil if absent.
func (c *Cache) GetDailyStudy(ctx context.Context, year uint32, categories []string) (*Entry, error) {
	return c.get(ctx, dailyStudyKey(year, categories))
}

// SetDailyStudy caches a resolved daily-study listing.
func (c *Cache) SetDailyStudy(ctx context.Context, year uint32, categories []string, data interface{}) error {
	return c.set(ctx, dailyStudyKey(year, categories), data)
}

func (c *Cache) get(ctx context.Context, key string) (*Entry, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		slog.Debug("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached entry %q: %w", key, err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal cached entry %q: %w", key, err)
	}
	slog.Debug("cache hit", "key", key, "cached_at", entry.CachedAt.Format(time.RFC3339))
	return &entry, nil
}

func (c *Cache) set(ctx context.Context, key string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal cache payload for %q: %w", key, err)
	}

	entry := Entry{Data: payload, CachedAt: time.Now()}
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry for %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, entryJSON, c.ttl).Err(); err != nil {
		slog.Error("cache set error", "key", key, "error", err)
		return fmt.Errorf("set cached entry %q: %w", key, err)
	}
	slog.Debug("cache set", "key", key, "ttl", c.ttl, "size_bytes", len(entryJSON))
	return nil
}

// InvalidateYear drops every cached schedule/daily-study entry for a
// given year, across all locations/categories.
func (c *Cache) InvalidateYear(ctx context.Context, year uint32) error {
	patterns := []string{
		fmt.Sprintf("schedule:%d:*", year),
		fmt.Sprintf("dailystudy:%d:*", year),
	}
	for _, pattern := range patterns {
		if err := c.deleteByPattern(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	var deleted int64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scan keys matching %q: %w", pattern, err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return fmt.Errorf("delete keys matching %q: %w", pattern, err)
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("cache keys deleted", "count", deleted, "pattern", pattern)
	}
	return nil
}

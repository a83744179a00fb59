// Package rediscache caches slow-changing identity lookups in Redis so the
// project table does not hit the identity service for every page render.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"identity-dashboard/app/port"
)

// domainKey stores the full domain id -> name table as one JSON document.
const domainKey = "identity-dashboard:domains"

// defaultDomainTTL bounds how stale the cached domain table may get.
const defaultDomainTTL = 5 * time.Minute

// DomainCache is a read-through cache in front of a DomainLookup backend.
// Cache failures are never surfaced; the backend answer wins.
type DomainCache struct {
	backend port.DomainLookup
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
}

// NewDomainCache creates the cache from a Redis URL. ttl <= 0 selects the
// default expiry.
func NewDomainCache(redisURL string, backend port.DomainLookup, ttl time.Duration, logger *slog.Logger) (*DomainCache, error) {
	if backend == nil {
		return nil, errors.New("domain cache requires a backend lookup")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = defaultDomainTTL
	}
	return &DomainCache{
		backend: backend,
		client:  redis.NewClient(opts),
		ttl:     ttl,
		logger:  logger.With("cache", "domains"),
	}, nil
}

// Close releases the Redis connection.
func (c *DomainCache) Close() error {
	return c.client.Close()
}

// HealthCheck reports whether Redis answers.
func (c *DomainCache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// DomainLookup returns the domain id -> name table, served from Redis when
// a fresh copy exists and refreshed from the backend otherwise.
func (c *DomainCache) DomainLookup(ctx context.Context) (map[string]string, error) {
	payload, err := c.client.Get(ctx, domainKey).Bytes()
	if err == nil {
		var lookup map[string]string
		if err := json.Unmarshal(payload, &lookup); err == nil {
			return lookup, nil
		}
		c.logger.Warn("discarding malformed cached domain table")
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("domain cache unavailable, using backend", "error", err)
	}

	lookup, err := c.backend.DomainLookup(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, lookup)
	return lookup, nil
}

// Invalidate drops the cached table. Called after domain mutations so the
// next render sees fresh names.
func (c *DomainCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, domainKey).Err(); err != nil {
		c.logger.Warn("failed to invalidate domain cache", "error", err)
	}
}

func (c *DomainCache) store(ctx context.Context, lookup map[string]string) {
	payload, err := json.Marshal(lookup)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, domainKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache domain table", "error", err)
	}
}

// Package cache puts a Redis read-through cache in front of the document store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/repo"
)

const keyPrefix = "tripdash:doc:"

// kv is the subset of the go-redis API the cache uses.
// *redis.Client satisfies it; unit tests pass a fake.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewClient builds a client from a redis:// URL. It does not dial: go-redis
// connects on first use and reconnects on its own, so a server that is down
// at boot only costs cache misses. Only a malformed URL is an error.
func NewClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache.NewClient: parse url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	return redis.NewClient(opts), nil
}

// Ping reports whether the server answers within five seconds.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("cache.Ping: %w", err)
	}
	return nil
}

// DocumentRepo decorates a repo.DocumentRepo with a Redis cache.
// Redis failures are logged and fall through to the inner repo; the cache
// never turns a loadable document into an error.
type DocumentRepo struct {
	inner  repo.DocumentRepo
	client kv
	ttl    time.Duration
	log    *slog.Logger
}

// NewDocumentRepo wraps inner. client is usually a *redis.Client.
func NewDocumentRepo(inner repo.DocumentRepo, client kv, ttl time.Duration, log *slog.Logger) *DocumentRepo {
	if log == nil {
		log = slog.Default()
	}
	return &DocumentRepo{inner: inner, client: client, ttl: ttl, log: log}
}

var _ repo.DocumentRepo = (*DocumentRepo)(nil)

// Get tries Redis first, then the inner repo; a miss is cached
// fire-and-forget.
func (c *DocumentRepo) Get(ctx context.Context, kind domain.DocumentKind) ([]byte, error) {
	key := keyPrefix + string(kind)

	body, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return body, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "document cache read failed", "kind", kind, "error", err)
	}

	body, err = c.inner.Get(ctx, kind)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "document cache write failed", "kind", kind, "error", err)
	} else {
		c.log.DebugContext(ctx, "document cached", "kind", kind, "ttl", c.ttl.String())
	}
	return body, nil
}

// Create writes through to the inner repo and evicts the cached copy when a
// document was written.
func (c *DocumentRepo) Create(ctx context.Context, kind domain.DocumentKind, body []byte) (bool, error) {
	created, err := c.inner.Create(ctx, kind, body)
	if err != nil || !created {
		return created, err
	}
	if err := c.client.Del(ctx, keyPrefix+string(kind)).Err(); err != nil {
		c.log.WarnContext(ctx, "document cache evict failed", "kind", kind, "error", err)
	}
	return true, nil
}

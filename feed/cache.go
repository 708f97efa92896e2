package feed

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL matches the feed's publication cadence: a snapshot fetched
// once is good for the rest of its hour, but a shorter TTL keeps a restarted
// upstream from serving stale artifacts for long.
const DefaultCacheTTL = 5 * time.Minute

const cacheKeyPrefix = "snapshot:"

// Cache is a short-lived store for fetched snapshot payloads. The core
// pipeline never touches it; it lives at the fetch layer so the engine stays
// stateless between calls.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, raw string)
}

// RedisCache backs the snapshot cache with Redis so multiple instances share
// fetched payloads.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.rdb.Get(ctx, cacheKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, key, raw string) {
	_ = c.rdb.Set(ctx, cacheKeyPrefix+key, raw, c.ttl).Err()
}

// MemoryCache is the in-process fallback used when no Redis address is
// configured.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	raw     string
	expires time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{ttl: ttl, entries: map[string]memoryEntry{}}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		delete(c.entries, key)
		return "", false
	}
	return e.raw, true
}

func (c *MemoryCache) Set(_ context.Context, key, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{raw: raw, expires: time.Now().Add(c.ttl)}
}

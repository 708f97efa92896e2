package driftwatch

import (
	"bytes"
	"sync"
	"time"
)

// responseCache memoizes rendered JSON responses for the feed cadence so
// repeated requests within one publication interval do not re-run the
// reconstruction pipeline.
type responseCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]responseEntry
}

type responseEntry struct {
	buf     []byte
	expires time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{ttl: ttl, entries: map[string]responseEntry{}}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.buf, true
}

func (c *responseCache) put(key string, buf []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = responseEntry{buf: buf, expires: time.Now().Add(c.ttl)}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

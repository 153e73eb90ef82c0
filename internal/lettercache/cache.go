// Package lettercache memoizes generated cover letters keyed by content
// fingerprint.
package lettercache

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/covercraft/internal/fingerprint"
)

// DefaultTTL is how long a cached letter stays fresh.
const DefaultTTL = time.Hour

// GenerateFunc produces a letter for a resume and job description pair. It is
// invoked on cache misses only.
type GenerateFunc func(ctx context.Context, resumeText, jobDesc string) (string, error)

type entry struct {
	letter    string
	expiresAt time.Time
}

// Cache guarantees at most one cached letter per content fingerprint.
// Failures are never stored, so a failed generation is retried on the next
// call rather than replayed.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Cache with the given TTL. A non-positive TTL uses DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrGenerate returns the cached letter for the input pair when present and
// fresh, otherwise invokes gen and stores a successful result. The boolean
// reports whether the letter came from cache.
func (c *Cache) GetOrGenerate(ctx context.Context, resumeText, jobDesc string, gen GenerateFunc) (string, bool, error) {
	key := fingerprint.Sum(resumeText, jobDesc)

	if letter, ok := c.get(key); ok {
		return letter, true, nil
	}

	letter, err := gen(ctx, resumeText, jobDesc)
	if err != nil {
		return "", false, err
	}

	c.put(key, letter)
	return letter, false, nil
}

// Get returns the fresh cached letter for an input pair, if any.
func (c *Cache) Get(resumeText, jobDesc string) (string, bool) {
	return c.get(fingerprint.Sum(resumeText, jobDesc))
}

// Clear removes all entries regardless of key.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of stored entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().After(e.expiresAt) {
		// Expired hit is a miss.
		delete(c.entries, key)
		return "", false
	}
	return e.letter, true
}

func (c *Cache) put(key, letter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		letter:    letter,
		expiresAt: c.now().Add(c.ttl),
	}
}

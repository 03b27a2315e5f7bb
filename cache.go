package main

import (
	"sync"
	"time"
)

// cacheTTL bounds how long a computed timestamp stays addressable from
// its message buttons.
const cacheTTL = 15 * time.Minute

type cacheEntry struct {
	result   *TimestampResult
	deadline time.Time
}

// resultCache is a TTL-bounded map from cache keys to computed
// results. Every Put arms one expiry timer; entries past their
// deadline are additionally treated as absent on read, so a Get never
// returns a stale entry even if its timer has not fired yet. Hits do
// not extend lifetimes, and there is no capacity bound: each command
// costs one entry and one pending timer for at most cacheTTL.
//
// discordgo runs handlers on separate goroutines, hence the mutex.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time            // swapped for a fake clock in tests
	after   func(time.Duration, func()) // schedules the expiry callback
	entries map[string]cacheEntry
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		now:     time.Now,
		after:   func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		entries: make(map[string]cacheEntry),
	}
}

// Put stores result under key, overwriting any previous entry, and
// schedules exactly one expiry ttl from now.
func (c *resultCache) Put(key string, result *TimestampResult) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{result: result, deadline: c.now().Add(c.ttl)}
	c.mu.Unlock()
	c.after(c.ttl, func() { c.Expire(key) })
}

// Get returns the cached result, or nil when the key is unknown or its
// deadline has passed.
func (c *resultCache) Get(key string) *TimestampResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.deadline) {
		return nil
	}
	return entry.result
}

// Expire removes key once its deadline has passed. Expiring an unknown
// key is a no-op. The deadline check keeps the timer of an overwritten
// entry from evicting its replacement early.
func (c *resultCache) Expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if ok && !c.now().Before(entry.deadline) {
		delete(c.entries, key)
	}
}

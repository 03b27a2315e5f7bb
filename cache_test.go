package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCache returns a cache on a fake clock. Advancing *now moves
// time; scheduled expiry callbacks are captured instead of armed so
// tests fire them by hand.
func testCache(start time.Time) (c *resultCache, now *time.Time, timers *[]func()) {
	c = newResultCache(cacheTTL)
	t := start
	now = &t
	c.now = func() time.Time { return *now }
	var scheduled []func()
	timers = &scheduled
	c.after = func(d time.Duration, f func()) { scheduled = append(scheduled, f) }
	return c, now, timers
}

func testResult() *TimestampResult {
	return &TimestampResult{Unix: 1718429400, Timezone: "Asia/Tokyo"}
}

func TestCacheExpiryBoundary(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, now, _ := testCache(start)

	c.Put("k", testResult())

	*now = start.Add(14*time.Minute + 59*time.Second)
	assert.NotNil(t, c.Get("k"), "entry should survive until the deadline")

	*now = start.Add(15*time.Minute + 1*time.Second)
	assert.Nil(t, c.Get("k"), "entry should be absent after the deadline")
}

func TestCacheGetDoesNotExtendLifetime(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, now, _ := testCache(start)

	c.Put("k", testResult())
	for minutes := 1; minutes <= 14; minutes++ {
		*now = start.Add(time.Duration(minutes) * time.Minute)
		require.NotNil(t, c.Get("k"))
	}
	*now = start.Add(16 * time.Minute)
	assert.Nil(t, c.Get("k"), "repeated reads must not refresh the deadline")
}

func TestCachePutOverwrites(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, _, _ := testCache(start)

	first := testResult()
	second := &TimestampResult{Unix: 42, Timezone: "Europe/London"}
	c.Put("k", first)
	c.Put("k", second)

	got := c.Get("k")
	require.NotNil(t, got)
	assert.Same(t, second, got)
}

func TestCacheTimerEvictsEntry(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, now, timers := testCache(start)

	c.Put("k", testResult())
	require.Len(t, *timers, 1, "every Put schedules exactly one expiry")

	*now = start.Add(cacheTTL)
	(*timers)[0]()
	assert.Nil(t, c.Get("k"))
}

// A timer armed for an overwritten entry fires at the old deadline;
// it must not take the replacement with it.
func TestCacheStaleTimerKeepsReplacement(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, now, timers := testCache(start)

	c.Put("k", testResult())
	*now = start.Add(10 * time.Minute)
	replacement := &TimestampResult{Unix: 42}
	c.Put("k", replacement)
	require.Len(t, *timers, 2)

	// First timer fires 15 minutes after the first Put.
	*now = start.Add(cacheTTL)
	(*timers)[0]()
	got := c.Get("k")
	require.NotNil(t, got, "replacement should outlive the stale timer")
	assert.Same(t, replacement, got)

	// Second timer fires at the replacement's own deadline.
	*now = start.Add(10*time.Minute + cacheTTL)
	(*timers)[1]()
	assert.Nil(t, c.Get("k"))
}

func TestCacheExpireIdempotent(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, now, _ := testCache(start)

	assert.NotPanics(t, func() { c.Expire("missing") })

	c.Put("k", testResult())
	*now = start.Add(cacheTTL + time.Second)
	c.Expire("k")
	c.Expire("k")
	assert.Nil(t, c.Get("k"))
}

func TestCacheIndependentKeys(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, now, _ := testCache(start)

	c.Put("a", testResult())
	*now = start.Add(10 * time.Minute)
	c.Put("b", testResult())

	*now = start.Add(16 * time.Minute)
	assert.Nil(t, c.Get("a"))
	assert.NotNil(t, c.Get("b"))
}

// Package cache provides a memoizing map that records both successful and
// failed lookups.
//
// A key is in one of three states: unrecorded (never looked up), recorded
// absent (looked up, nothing found) or recorded present (looked up, value
// found).  Once recorded, a key keeps its outcome until it is invalidated.
package cache

type state uint8

const (
	recordedAbsent state = iota + 1
	recordedPresent
)

type entry[V any] struct {
	state state
	value V
}

// Stats counts cache hits and calculations.
type Stats struct {
	Hits   int
	Misses int
}

// Cache is an unsynchronized tri-state memo table.  The zero value is not
// usable; use New.
type Cache[K comparable, V any] struct {
	entries map[K]entry[V]
	stats   Stats
}

// New constructs an empty Cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]entry[V]),
	}
}

// LookupOrCalculate returns the recorded outcome for key.  If key is
// unrecorded, calc is called exactly once and its outcome recorded.
func (c *Cache[K, V]) LookupOrCalculate(key K, calc func(K) (V, bool)) (V, bool) {
	if e, ok := c.entries[key]; ok {
		c.stats.Hits++
		return e.value, e.state == recordedPresent
	}
	c.stats.Misses++
	value, ok := calc(key)
	c.record(key, value, ok)
	return value, ok
}

// LookupOrCalculateWithPostCompute is like LookupOrCalculate, except calc
// also yields an auxiliary payload.  postCompute is called with the value and
// payload only when key moves from unrecorded to recorded present; it is never
// called on a cache hit or a recorded absence.
func LookupOrCalculateWithPostCompute[K comparable, V, T any](
	c *Cache[K, V],
	key K,
	calc func(K) (V, bool, T),
	postCompute func(V, T),
) (V, bool) {
	if e, ok := c.entries[key]; ok {
		c.stats.Hits++
		return e.value, e.state == recordedPresent
	}
	c.stats.Misses++
	value, ok, extra := calc(key)
	c.record(key, value, ok)
	if ok {
		postCompute(value, extra)
	}
	return value, ok
}

func (c *Cache[K, V]) record(key K, value V, ok bool) {
	if ok {
		c.entries[key] = entry[V]{state: recordedPresent, value: value}
		return
	}
	var zero V
	c.entries[key] = entry[V]{state: recordedAbsent, value: zero}
}

// Contains reports whether key has a recorded outcome, present or absent.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the recorded value for key without calculating.  Unrecorded and
// recorded-absent keys both return false; use Contains to tell them apart.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok || e.state != recordedPresent {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Invalidate discards the recorded outcome for key.
func (c *Cache[K, V]) Invalidate(key K) {
	delete(c.entries, key)
}

// Len returns the number of recorded keys.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Stats returns the hit/miss counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

package cache

import "sync"

// Locked wraps a Cache with a single mutex held across the whole
// check-then-calculate sequence, so calc runs at most once per key even when
// lookups race.  calc must not re-enter the same Locked cache.
type Locked[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewLocked constructs an empty Locked cache.
func NewLocked[K comparable, V any]() *Locked[K, V] {
	return &Locked[K, V]{cache: New[K, V]()}
}

// LookupOrCalculate implements Cache.LookupOrCalculate under the lock.
func (l *Locked[K, V]) LookupOrCalculate(key K, calc func(K) (V, bool)) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.LookupOrCalculate(key, calc)
}

// LookupOrCalculateWithPostComputeLocked is LookupOrCalculateWithPostCompute
// under the lock.  postCompute also runs while the lock is held.
func LookupOrCalculateWithPostComputeLocked[K comparable, V, T any](
	l *Locked[K, V],
	key K,
	calc func(K) (V, bool, T),
	postCompute func(V, T),
) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LookupOrCalculateWithPostCompute(l.cache, key, calc, postCompute)
}

// Contains implements Cache.Contains under the lock.
func (l *Locked[K, V]) Contains(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Contains(key)
}

// Get implements Cache.Get under the lock.
func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Get(key)
}

// Invalidate implements Cache.Invalidate under the lock.
func (l *Locked[K, V]) Invalidate(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Invalidate(key)
}

// Stats implements Cache.Stats under the lock.
func (l *Locked[K, V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Stats()
}

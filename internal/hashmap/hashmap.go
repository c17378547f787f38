// Package hashmap implements a separate-chaining, resizing hash map over
// generic (key, value) pairs. The map stores no hash/eq function pointers
// of its own beyond what is supplied at construction time: callers that
// need the same key bytes addressed both by content and by pointer
// identity construct two separate typed wrappers (see BytesMap and
// IdentityMap) rather than passing a strategy on every call.
package hashmap

import "fmt"

const maxLoadFactor = 0.75

// HashFunc computes a hash code for a key.
type HashFunc[K any] func(K) uint64

// EqFunc reports whether two keys are equal.
type EqFunc[K any] func(a, b K) bool

type entry[K any, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// Map is a separate-chaining hash map keyed by K, with values V.
type Map[K any, V any] struct {
	hash    HashFunc[K]
	eq      EqFunc[K]
	buckets []*entry[K, V]
	size    int
}

// New creates a Map with at least nBuckets buckets (rounded up to a
// minimum of 1).
func New[K any, V any](hash HashFunc[K], eq EqFunc[K], nBuckets int) *Map[K, V] {
	if nBuckets < 1 {
		nBuckets = 1
	}
	return &Map[K, V]{
		hash:    hash,
		eq:      eq,
		buckets: make([]*entry[K, V], nBuckets),
	}
}

func (m *Map[K, V]) bucketIndex(h uint64) int {
	return int(h % uint64(len(m.buckets)))
}

// Size returns the number of entries currently stored.
func (m *Map[K, V]) Size() int { return m.size }

// Get looks up key and reports whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	idx := m.bucketIndex(m.hash(key))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if m.eq(e.key, key) {
			return e.val, true
		}
	}
	return zero, false
}

// Put inserts or updates the value for key, growing the table if the load
// factor would exceed 3/4.
func (m *Map[K, V]) Put(key K, val V) {
	idx := m.bucketIndex(m.hash(key))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if m.eq(e.key, key) {
			e.val = val
			return
		}
	}

	m.buckets[idx] = &entry[K, V]{key: key, val: val, next: m.buckets[idx]}
	m.size++

	if float64(m.size) > maxLoadFactor*float64(len(m.buckets)) {
		// growth failure here would only come from an impossible allocation
		// failure in Go; Rehash is still exposed as fallible so callers
		// driving an explicit resize can check it.
		_ = m.Rehash(len(m.buckets) * 2)
	}
}

// Remove deletes key from the map, reporting whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	idx := m.bucketIndex(m.hash(key))
	var prev *entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if m.eq(e.key, key) {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return true
		}
		prev = e
	}
	return false
}

// Rehash resizes the table to newBucketCount buckets. It validates the
// request before touching any bucket, so a failed call leaves the map
// exactly as it was (the map "must not corrupt on failure", per spec).
func (m *Map[K, V]) Rehash(newBucketCount int) error {
	if newBucketCount < 1 {
		return fmt.Errorf("hashmap: invalid bucket count %d", newBucketCount)
	}

	newBuckets := make([]*entry[K, V], newBucketCount)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next // save before relinking e into its new bucket
			idx := int(m.hash(e.key) % uint64(newBucketCount))
			e.next = newBuckets[idx]
			newBuckets[idx] = e
			e = next
		}
	}

	m.buckets = newBuckets
	return nil
}

// ForEach calls fn for every entry, in unspecified order. fn must not
// mutate the map.
func (m *Map[K, V]) ForEach(fn func(K, V)) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.key, e.val)
		}
	}
}

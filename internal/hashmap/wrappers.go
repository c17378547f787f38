package hashmap

import (
	"fmt"
	"reflect"
)

// fnv1a64 hashes bytes content, used by BytesMap for content-addressed
// lookups (e.g. the interner's canonical-key table).
func fnv1a64(b []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime
	}
	return h
}

// BytesMap is a HashMap specialized for string keys hashed and compared by
// content, the typed wrapper the interner uses to canonicalize byte keys.
type BytesMap[V any] struct {
	m *Map[string, V]
}

// NewBytesMap creates a content-addressed map with at least nBuckets
// buckets.
func NewBytesMap[V any](nBuckets int) *BytesMap[V] {
	return &BytesMap[V]{
		m: New[string, V](
			func(k string) uint64 { return fnv1a64([]byte(k)) },
			func(a, b string) bool { return a == b },
			nBuckets,
		),
	}
}

func (b *BytesMap[V]) Get(key []byte) (V, bool)    { return b.m.Get(string(key)) }
func (b *BytesMap[V]) Put(key []byte, val V)        { b.m.Put(string(key), val) }
func (b *BytesMap[V]) Remove(key []byte) bool       { return b.m.Remove(string(key)) }
func (b *BytesMap[V]) Size() int                    { return b.m.Size() }
func (b *BytesMap[V]) ForEach(fn func(string, V))   { b.m.ForEach(fn) }

// IdentityMap is a HashMap specialized for pointer-like keys (pointers,
// maps, funcs, channels, slices, unsafe.Pointer) hashed and compared by
// identity rather than content. TypeStore's primitive_registry is one,
// keyed by the keyword interner's *intern.Result for each base-type
// spelling. TypeStore's structural-type canonical table is a plain Map
// whose eq function compares already-interned component type pointers.
type IdentityMap[K comparable, V any] struct {
	m *Map[K, V]
}

// NewIdentityMap creates an identity-keyed map with at least nBuckets
// buckets.
func NewIdentityMap[K comparable, V any](nBuckets int) *IdentityMap[K, V] {
	return &IdentityMap[K, V]{
		m: New[K, V](identityHash[K], func(a, b K) bool { return a == b }, nBuckets),
	}
}

func identityHash[K comparable](k K) uint64 {
	v := reflect.ValueOf(k)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return mix64(uint64(v.Pointer()))
	case reflect.Slice:
		return mix64(uint64(v.Pointer())) ^ uint64(v.Len())
	default:
		// fall back to content hashing via fmt-free reflection for any other
		// comparable type the caller instantiates this with.
		return fnv1a64([]byte(fmt.Sprint(k)))
	}
}

// mix64 is a small avalanche mix (splitmix64 finalizer) so that pointer
// values, which are often nearly-sequential small offsets from a heap
// arena, spread evenly across buckets.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func (m *IdentityMap[K, V]) Get(key K) (V, bool)  { return m.m.Get(key) }
func (m *IdentityMap[K, V]) Put(key K, val V)     { m.m.Put(key, val) }
func (m *IdentityMap[K, V]) Remove(key K) bool    { return m.m.Remove(key) }
func (m *IdentityMap[K, V]) Size() int            { return m.m.Size() }
func (m *IdentityMap[K, V]) ForEach(fn func(K, V)) { m.m.ForEach(fn) }

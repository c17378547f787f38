// Package dynseq implements a growable, ordered sequence of fixed-size
// elements, optionally backed by an arena instead of the private Go heap.
package dynseq

import "github.com/mna/alder/internal/arena"

// Seq is a growable sequence of T. The zero value is not usable; create one
// with New (heap-backed) or NewArena (arena-backed).
type Seq[T any] struct {
	a    *arena.Arena // nil for heap-backed sequences
	data []T
}

// New returns a heap-backed sequence using ordinary Go slice doubling.
func New[T any](capacity int) *Seq[T] {
	return &Seq[T]{data: make([]T, 0, capacity)}
}

// NewArena returns an arena-backed sequence. Growth re-allocates a larger
// region from the arena and copies the live elements; arena-backed
// sequences never shrink and never return intermediate buffers.
func NewArena[T any](a *arena.Arena, capacity int) *Seq[T] {
	s := &Seq[T]{a: a}
	if capacity > 0 {
		s.data = s.allocSlice(capacity)[:0]
	}
	return s
}

func (s *Seq[T]) allocSlice(capacity int) []T {
	var zero T
	elemSize := sizeOfT(zero)
	buf := s.a.Alloc(elemSize * capacity)
	return unsafeSliceOf[T](buf, capacity)
}

// Count returns the number of elements currently stored.
func (s *Seq[T]) Count() int { return len(s.data) }

// Cap returns the current backing capacity.
func (s *Seq[T]) Cap() int { return cap(s.data) }

// Get returns the element at index i.
func (s *Seq[T]) Get(i int) T { return s.data[i] }

// Set overwrites the element at index i.
func (s *Seq[T]) Set(i int, v T) { s.data[i] = v }

// PushValue appends v, growing the backing storage if needed.
func (s *Seq[T]) PushValue(v T) {
	s.Reserve(len(s.data) + 1)
	s.data = append(s.data, v)
}

// PushUninit appends one zero-valued element and returns its index, for
// callers that want to fill it in place.
func (s *Seq[T]) PushUninit() int {
	s.Reserve(len(s.data) + 1)
	var zero T
	s.data = append(s.data, zero)
	return len(s.data) - 1
}

// Pop removes and returns the last element. It panics if the sequence is
// empty, matching slice semantics elsewhere in this module.
func (s *Seq[T]) Pop() T {
	n := len(s.data)
	v := s.data[n-1]
	s.data = s.data[:n-1]
	return v
}

// RemoveAt removes the element at index i, shifting the tail down by one.
func (s *Seq[T]) RemoveAt(i int) {
	copy(s.data[i:], s.data[i+1:])
	s.data = s.data[:len(s.data)-1]
}

// Reserve ensures the backing storage can hold at least n elements without
// further reallocation.
func (s *Seq[T]) Reserve(n int) {
	if n <= cap(s.data) {
		return
	}
	newCap := cap(s.data) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < 4 {
		newCap = 4
	}

	if s.a == nil {
		grown := make([]T, len(s.data), newCap)
		copy(grown, s.data)
		s.data = grown
		return
	}

	grown := s.allocSlice(newCap)
	grown = grown[:len(s.data)]
	copy(grown, s.data)
	s.data = grown
}

// Slice returns the live elements as a Go slice. The slice must not be
// retained past the next mutating call, since arena-backed sequences may
// relocate their storage on growth.
func (s *Seq[T]) Slice() []T { return s.data }

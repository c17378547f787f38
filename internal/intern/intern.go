// Package intern implements a content-addressed store assigning stable
// dense indices to canonical byte keys, per spec §4.4. The canonical copy
// of every key lives in the interner's arena and outlives the interner
// itself (for the lifetime of the whole compilation).
package intern

import (
	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/internal/hashmap"
)

// CopyFunc produces a canonical, arena-owned copy of key. string_copy and
// binary_copy in spec §4.4 are StringCopy and BinaryCopy below.
type CopyFunc func(a *arena.Arena, key []byte) []byte

// Result is what Intern/Peek/GetByIndex return: the canonical key, its
// dense index, and an opaque metadata slot the caller may use for
// per-entry bookkeeping (e.g. a keyword's token kind, or a pointer to a
// canonicalized SemanticType).
type Result struct {
	Key   []byte
	Index int
	Meta  any
}

// Interner assigns dense indices to canonical byte keys. It is not
// thread-safe; a compilation uses exactly one of each interner it needs.
type Interner struct {
	arena *arena.Arena
	byKey *hashmap.BytesMap[*Result]
	dense []*Result
	copy  CopyFunc
}

// New creates an Interner backed by a, using copyFn to canonicalize keys
// into arena storage.
func New(a *arena.Arena, copyFn CopyFunc) *Interner {
	return &Interner{
		arena: a,
		byKey: hashmap.NewBytesMap[*Result](64),
		copy:  copyFn,
	}
}

// Intern looks up key; on a hit it returns the existing Result unchanged
// (meta is not updated). On a miss it canonicalizes key via the
// interner's CopyFunc, assigns the next dense index, and records meta.
func (in *Interner) Intern(key []byte, meta any) *Result {
	if r, ok := in.byKey.Get(key); ok {
		return r
	}

	canon := in.copy(in.arena, key)
	r := &Result{Key: canon, Index: len(in.dense), Meta: meta}
	in.dense = append(in.dense, r)
	in.byKey.Put(canon, r)
	return r
}

// Peek looks up key without inserting. It returns (nil, false) on a miss.
func (in *Interner) Peek(key []byte) (*Result, bool) {
	return in.byKey.Get(key)
}

// GetByIndex returns the Result at the given dense index.
func (in *Interner) GetByIndex(i int) *Result { return in.dense[i] }

// Count returns the number of distinct keys interned so far, i.e. the
// number of dense indices assigned.
func (in *Interner) Count() int { return len(in.dense) }

// ForEach visits every interned Result in dense-index (insertion) order.
func (in *Interner) ForEach(fn func(*Result)) {
	for _, r := range in.dense {
		fn(r)
	}
}

// StringCopy writes key's bytes followed by a NUL terminator, for results
// that downstream tooling (e.g. a future C-interop layer) may want to treat
// as a C string. The returned slice's length excludes the terminator.
func StringCopy(a *arena.Arena, key []byte) []byte {
	buf := a.Alloc(len(key) + 1)
	copy(buf, key)
	buf[len(key)] = 0
	return buf[:len(key):len(key)]
}

// BinaryCopy copies key's bytes exactly, with no terminator.
func BinaryCopy(a *arena.Arena, key []byte) []byte {
	buf := a.Alloc(len(key))
	copy(buf, key)
	return buf
}

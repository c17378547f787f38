// Package types implements the structural semantic-type interner (spec
// §4.8): SemanticType values are canonicalised so that type identity is
// pointer identity, and two syntactic type expressions resolve to the
// same pointer iff they denote the same type.
package types

import (
	"fmt"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/internal/hashmap"
	"github.com/mna/alder/internal/intern"
)

// Kind tags the variant carried by a SemanticType.
type Kind uint8

const (
	Primitive Kind = iota
	Pointer
	Array
	Function
)

// PrimitiveKind enumerates the base types. Values are kept in the order
// the arithmetic-promotion rule compares them (spec §4.9.2: f64 > f32 >
// i64 > i32), so a numeric rank comparison can use plain integer
// comparison once values are mapped through numericRank.
type PrimitiveKind uint8

const (
	Void PrimitiveKind = iota
	I32
	I64
	F32
	F64
	Bool
	Char
	Str
)

// SemanticType is a canonicalised type value. Two SemanticType pointers
// denote the same type iff they are equal; recursion into component
// types never needs to compare structurally because components are
// themselves canonical.
type SemanticType struct {
	Kind Kind

	// Primitive is valid when Kind == Primitive.
	Primitive PrimitiveKind

	// Base is the pointee (Pointer) or element type (Array).
	Base *SemanticType

	// Size and SizeKnown are valid when Kind == Array.
	Size      int64
	SizeKnown bool

	// Return and Params are valid when Kind == Function.
	Return *SemanticType
	Params []*SemanticType

	hash uint64
}

// IsNumeric reports whether t is one of i32, i64, f32, f64.
func (t *SemanticType) IsNumeric() bool {
	return t.Kind == Primitive && (t.Primitive == I32 || t.Primitive == I64 || t.Primitive == F32 || t.Primitive == F64)
}

// IsInteger reports whether t is i32 or i64.
func (t *SemanticType) IsInteger() bool {
	return t.Kind == Primitive && (t.Primitive == I32 || t.Primitive == I64)
}

// IsFloat reports whether t is f32 or f64.
func (t *SemanticType) IsFloat() bool {
	return t.Kind == Primitive && (t.Primitive == F32 || t.Primitive == F64)
}

// IsBool reports whether t is bool.
func (t *SemanticType) IsBool() bool { return t.Kind == Primitive && t.Primitive == Bool }

// numericRank orders numeric primitives for the "higher wins" promotion
// rule; 0 for non-numeric.
func numericRank(t *SemanticType) int {
	if t.Kind != Primitive {
		return 0
	}
	switch t.Primitive {
	case I32:
		return 1
	case I64:
		return 2
	case F32:
		return 3
	case F64:
		return 4
	default:
		return 0
	}
}

// NumericRank exposes numericRank to the semantic analyser.
func NumericRank(t *SemanticType) int { return numericRank(t) }

func (t *SemanticType) String() string {
	switch t.Kind {
	case Primitive:
		return primitiveNames[t.Primitive]
	case Pointer:
		return "*" + t.Base.String()
	case Array:
		if t.SizeKnown {
			return fmt.Sprintf("%s[%d]", t.Base.String(), t.Size)
		}
		return t.Base.String() + "[]"
	case Function:
		s := "fn("
		for i, p := range t.Params {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		s += ")"
		if t.Return != nil && !(t.Return.Kind == Primitive && t.Return.Primitive == Void) {
			s += " -> " + t.Return.String()
		}
		return s
	default:
		return "<unknown type>"
	}
}

var primitiveNames = [...]string{
	Void: "void", I32: "i32", I64: "i64", F32: "f32", F64: "f64",
	Bool: "bool", Char: "char", Str: "str",
}

// key is the structural lookup key used by the store's interning map. Two
// keys compare equal iff they describe the same type, and per spec §4.8
// that comparison is pointer equality on every component; it never
// recurses into a component's own shape.
type key struct {
	kind   Kind
	prim   PrimitiveKind
	base   *SemanticType
	size   int64
	known  bool
	ret    *SemanticType
	params []*SemanticType
}

// Store is the structural interner for SemanticType values (spec §4.8).
// The canonical primitive slots are exposed directly as fields.
type Store struct {
	arena *arena.Arena
	byKey *hashmap.Map[key, *SemanticType]

	// primitives maps an interned keyword spelling (by *intern.Result
	// identity) to its canonical primitive type, the "primitive registry".
	primitives *hashmap.IdentityMap[*intern.Result, *SemanticType]

	Void, I32, I64, F32, F64, Bool, Char, Str *SemanticType
}

func hashKey(k key) uint64 {
	h := uint64(k.kind)*1099511628211 + uint64(k.prim)
	h = mix(h, ptrBits(k.base))
	h = mix(h, uint64(k.size))
	if k.known {
		h = mix(h, 1)
	}
	h = mix(h, ptrBits(k.ret))
	for _, p := range k.params {
		h = mix(h, ptrBits(p))
	}
	return h
}

func eqKey(a, b key) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Primitive:
		return a.prim == b.prim
	case Pointer:
		return a.base == b.base
	case Array:
		return a.base == b.base && a.size == b.size && a.known == b.known
	case Function:
		if a.ret != b.ret || len(a.params) != len(b.params) {
			return false
		}
		for i := range a.params {
			if a.params[i] != b.params[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func ptrBits(t *SemanticType) uint64 {
	if t == nil {
		return 0
	}
	return t.hash ^ uint64(uintptr(ptrOf(t)))
}

func mix(h, v uint64) uint64 {
	h ^= v
	h *= 1099511628211
	return h
}

const initialTypeBuckets = 64

// New creates a Store. identifiers is unused directly by the store (names
// are resolved by the caller into keyword-interner results before calling
// the primitive registry), but is accepted to mirror the external
// interface in spec §6; keywords supplies the canonical spellings of the
// base-type keywords used to seed the primitive registry.
func New(a *arena.Arena, identifiers, keywords *intern.Interner) *Store {
	s := &Store{
		arena:      a,
		byKey:      hashmap.New[key, *SemanticType](hashKey, eqKey, initialTypeBuckets),
		primitives: hashmap.NewIdentityMap[*intern.Result, *SemanticType](initialTypeBuckets),
	}
	_ = identifiers

	seed := func(name string, pk PrimitiveKind) *SemanticType {
		t := &SemanticType{Kind: Primitive, Primitive: pk}
		t.hash = uint64(pk) * 2654435761
		if r, ok := keywords.Peek([]byte(name)); ok {
			s.primitives.Put(r, t)
		}
		return t
	}

	s.Void = seed("void", Void)
	s.I32 = seed("i32", I32)
	s.I64 = seed("i64", I64)
	s.F32 = seed("f32", F32)
	s.F64 = seed("f64", F64)
	s.Bool = seed("bool", Bool)
	s.Char = seed("char", Char)
	s.Str = seed("str", Str)
	return s
}

// LookupPrimitiveName reports whether r names a primitive type, per the
// O(1) primitive_registry lookup of spec §4.8.
func (s *Store) LookupPrimitiveName(r *intern.Result) (*SemanticType, bool) {
	return s.primitives.Get(r)
}

// PointerOf interns Pointer(base).
func (s *Store) PointerOf(base *SemanticType) *SemanticType {
	k := key{kind: Pointer, base: base}
	if t, ok := s.byKey.Get(k); ok {
		return t
	}
	t := &SemanticType{Kind: Pointer, Base: base}
	t.hash = hashKey(k)
	s.byKey.Put(k, t)
	return t
}

// ArrayOf interns Array(elem, size, sizeKnown).
func (s *Store) ArrayOf(elem *SemanticType, size int64, sizeKnown bool) *SemanticType {
	k := key{kind: Array, base: elem, size: size, known: sizeKnown}
	if t, ok := s.byKey.Get(k); ok {
		return t
	}
	t := &SemanticType{Kind: Array, Base: elem, Size: size, SizeKnown: sizeKnown}
	t.hash = hashKey(k)
	s.byKey.Put(k, t)
	return t
}

// FunctionOf interns Function(ret, params). params is deep-copied so the
// caller's backing slice may be reused afterward.
func (s *Store) FunctionOf(ret *SemanticType, params []*SemanticType) *SemanticType {
	cp := append([]*SemanticType(nil), params...)
	k := key{kind: Function, ret: ret, params: cp}
	if t, ok := s.byKey.Get(k); ok {
		return t
	}
	t := &SemanticType{Kind: Function, Return: ret, Params: cp}
	t.hash = hashKey(k)
	s.byKey.Put(k, t)
	return t
}

// Package scope implements the array-indexed identifier scope of spec
// §4.7: each scope is a flat slice of symbol slots addressed directly by
// an identifier's dense interner index, so a local lookup is O(1) and a
// chain walk to an enclosing scope is O(depth).
package scope

import "github.com/mna/alder/lang/types"

// Kind tags what a Symbol denotes.
type Kind uint8

const (
	Variable Kind = iota
	FunctionSym
	TypeSym
)

// Flag is a bitset of symbol attributes.
type Flag uint8

const (
	Const Flag = 1 << iota
	Used
	Initialized
	ComputedValue
)

// ConstValue mirrors ast.ConstValue without importing the ast package
// (which itself imports types), keeping the dependency graph acyclic.
type ConstValue struct {
	Kind  ConstValueKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Char  rune
}

type ConstValueKind uint8

const (
	ConstNone ConstValueKind = iota
	ConstInt
	ConstFloat
	ConstBool
	ConstString
	ConstChar
)

// Symbol is a named declaration recorded in a scope (spec §3).
type Symbol struct {
	NameRef int
	Name    string
	Type    *types.SemanticType
	Kind    Kind
	Flags   Flag
	Const   ConstValue
}

func (s *Symbol) HasFlag(f Flag) bool { return s.Flags&f != 0 }
func (s *Symbol) SetFlag(f Flag)      { s.Flags |= f }

// Scope is an identifier scope: a slot array indexed by identifier dense
// index, plus a parent link for chain lookup.
type Scope struct {
	parent *Scope
	depth  int
	slots  []*Symbol
}

// slack added to the identifier-interner's dense index count when sizing
// a scope's slot array, so symbols interned after scope creation (rare,
// but possible for synthesized names) still have a slot.
const slack = 8

// New creates a root scope sized to hold nIdents distinct identifiers.
func New(nIdents int) *Scope {
	return &Scope{slots: make([]*Symbol, nIdents+slack)}
}

// Child creates a new scope nested under s.
func (s *Scope) Child(nIdents int) *Scope {
	return &Scope{parent: s, depth: s.depth + 1, slots: make([]*Symbol, nIdents+slack)}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Depth returns the scope's nesting depth (0 for a root scope).
func (s *Scope) Depth() int { return s.depth }

func (s *Scope) grow(nameRef int) {
	if nameRef < len(s.slots) {
		return
	}
	grown := make([]*Symbol, nameRef+slack+1)
	copy(grown, s.slots)
	s.slots = grown
}

// Define records sym in this scope. It refuses redeclaration: if a
// symbol already occupies nameRef's slot in this scope (not a parent),
// Define returns false and leaves the existing symbol untouched.
func (s *Scope) Define(nameRef int, sym *Symbol) bool {
	s.grow(nameRef)
	if s.slots[nameRef] != nil {
		return false
	}
	s.slots[nameRef] = sym
	return true
}

// LookupLocal looks up nameRef only within this scope, not its parents.
func (s *Scope) LookupLocal(nameRef int) (*Symbol, bool) {
	if nameRef < 0 || nameRef >= len(s.slots) {
		return nil, false
	}
	sym := s.slots[nameRef]
	return sym, sym != nil
}

// Lookup walks from s up through parents, returning the first symbol
// found for nameRef.
func (s *Scope) Lookup(nameRef int) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.LookupLocal(nameRef); ok {
			return sym, true
		}
	}
	return nil, false
}

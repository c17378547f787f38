// Package sema implements the two-pass semantic analyser of spec §4.9:
// type resolution, bidirectional expression checking with constant
// folding and implicit-cast insertion, and the statement-level rules
// that glue them together.
package sema

import (
	"fmt"

	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// Kind tags the taxonomy of type errors in spec §7.
type Kind uint8

const (
	UnknownType Kind = iota
	Redeclaration
	Undeclared
	TypeMismatch
	ReturnMismatch
	VariableTypeResolutionFailed
	DimensionMismatch
	ArraySizeMismatch
	ExpectedArray
	UnexpectedList
	BinOpMismatch
	UnOpMismatch
	NotCallable
	NotIndexable
	FieldAccess
	ConstAssign
	ArgCountMismatch
	NotConst
	NotLValue
)

// TypeError is a single diagnostic appended to the analyser's diagnostic
// vector; analysis continues after one is recorded (spec §7).
type TypeError struct {
	Kind Kind
	Sp   token.Span
	File string

	Name string // UnknownType, Redeclaration, Undeclared, VariableTypeResolutionFailed, FieldAccess

	Expected *types.SemanticType // TypeMismatch, ReturnMismatch, ExpectedArray, UnexpectedList
	Actual   *types.SemanticType // TypeMismatch, ReturnMismatch, ExpectedArray, UnOpMismatch, NotCallable, NotIndexable

	ExpectedNDim, ActualNDim int   // DimensionMismatch
	ExpectedSize, ActualSize int64 // ArraySizeMismatch
	ExpectedCount, ActualCount int // ArgCountMismatch

	Op    token.Kind           // BinOpMismatch, UnOpMismatch
	Left  *types.SemanticType  // BinOpMismatch
	Right *types.SemanticType  // BinOpMismatch
}

func (e *TypeError) Filename() string   { return e.File }
func (e *TypeError) Span() token.Span   { return e.Sp }

func typeName(t *types.SemanticType) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}

func (e *TypeError) Error() string {
	switch e.Kind {
	case UnknownType:
		return fmt.Sprintf("unknown type %q", e.Name)
	case Redeclaration:
		return fmt.Sprintf("redeclaration of %q", e.Name)
	case Undeclared:
		return fmt.Sprintf("undeclared identifier %q", e.Name)
	case TypeMismatch:
		return fmt.Sprintf("type mismatch: expected %s, got %s", typeName(e.Expected), typeName(e.Actual))
	case ReturnMismatch:
		return fmt.Sprintf("return type mismatch: expected %s, got %s", typeName(e.Expected), typeName(e.Actual))
	case VariableTypeResolutionFailed:
		return fmt.Sprintf("could not resolve declared type of %q", e.Name)
	case DimensionMismatch:
		return fmt.Sprintf("initializer dimension mismatch: expected %d dimension(s), got %d", e.ExpectedNDim, e.ActualNDim)
	case ArraySizeMismatch:
		return fmt.Sprintf("array size mismatch: expected %d element(s), got %d", e.ExpectedSize, e.ActualSize)
	case ExpectedArray:
		return fmt.Sprintf("expected an array type, got %s", typeName(e.Actual))
	case UnexpectedList:
		return fmt.Sprintf("initializer list not allowed here, expected %s", typeName(e.Expected))
	case BinOpMismatch:
		return fmt.Sprintf("operator %s not defined for %s and %s", e.Op.GoString(), typeName(e.Left), typeName(e.Right))
	case UnOpMismatch:
		return fmt.Sprintf("operator %s not defined for %s", e.Op.GoString(), typeName(e.Actual))
	case NotCallable:
		return fmt.Sprintf("cannot call a value of type %s", typeName(e.Actual))
	case NotIndexable:
		return fmt.Sprintf("cannot index a value of type %s", typeName(e.Actual))
	case FieldAccess:
		return fmt.Sprintf("no such field %q", e.Name)
	case ConstAssign:
		return "cannot assign to a const variable"
	case ArgCountMismatch:
		return fmt.Sprintf("argument count mismatch: expected %d, got %d", e.ExpectedCount, e.ActualCount)
	case NotConst:
		return "expression must be a compile-time constant"
	case NotLValue:
		return "expression is not assignable"
	default:
		return "type error"
	}
}

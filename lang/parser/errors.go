package parser

import (
	"fmt"

	"github.com/mna/alder/lang/token"
)

// ParseError is the single structured diagnostic a Parser produces (spec
// §4.6, §7). Parsing stops at the first error.
type ParseError struct {
	Message      string
	Token        token.Token
	PrevToken    token.Token
	UsePrevToken bool
	File         string
}

func (e *ParseError) Error() string { return e.Message }

// Filename satisfies diag.Diagnostic.
func (e *ParseError) Filename() string { return e.File }

// Span satisfies diag.Diagnostic. When UsePrevToken is set, the caret
// points at the column immediately after the previous token's lexeme.
// Used for "missing `;`" and "missing `)`" style errors, per spec §7.
func (e *ParseError) Span() token.Span {
	if e.UsePrevToken {
		end := e.PrevToken.Span.EndLine
		col := e.PrevToken.Span.EndCol
		return token.Span{StartLine: end, StartCol: col, EndLine: end, EndCol: col + 1}
	}
	return e.Token.Span
}

func expectedMsg(expected string, got token.Token) string {
	if got.Kind == token.UNKNOWN || got.Kind == token.EOF {
		return fmt.Sprintf("expected %s, found %s", expected, got.Kind.String())
	}
	return fmt.Sprintf("expected %s, found %s", expected, got.Kind.GoString())
}

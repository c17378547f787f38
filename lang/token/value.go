package token

import "github.com/mna/alder/internal/intern"

// Record is the optional interner reference carried by a Token, per spec
// §3: identifiers point to the identifier interner, keywords carry their
// token kind as the keyword interner's metadata, string literals point to
// the (unescaped) string interner, and character literals carry the
// decoded code point directly. Zero value means "no record".
type Record struct {
	Interned     *intern.Result
	CodePoint    rune
	HasCodePoint bool
}

// Token is a single lexical token with its source span and optional
// interner record.
type Token struct {
	Kind   Kind
	Slice  []byte // zero-copy view into the borrowed source buffer
	Span   Span
	Record Record
}

// KeywordKind returns the token kind recorded for a keyword token (the
// keyword interner's metadata, per spec §4.5), or UNKNOWN if this token
// doesn't carry one.
func (t Token) KeywordKind() Kind {
	if t.Record.Interned == nil {
		return UNKNOWN
	}
	kind, ok := t.Record.Interned.Meta.(Kind)
	if !ok {
		return UNKNOWN
	}
	return kind
}

// String returns the raw lexeme.
func (t Token) String() string { return string(t.Slice) }

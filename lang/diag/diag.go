// Package diag renders structured diagnostics (parse and type errors) as
// a file:line:col plus source-excerpt-with-caret format, the same shape
// go/scanner.ErrorList produces for compile errors.
package diag

import (
	"fmt"
	"strings"

	"github.com/mna/alder/lang/token"
)

// Diagnostic is anything that can be rendered against a source buffer:
// both *parser.ParseError and *sema.TypeError satisfy it.
type Diagnostic interface {
	error
	Filename() string
	Span() token.Span
}

// Render formats d as "file:line:col: message" followed by a source
// excerpt with an underline, when the diagnostic's span starts and ends
// on the same line (spec §7).
func Render(d Diagnostic, src []byte) string {
	sp := d.Span()
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s\n", d.Filename(), sp.StartLine, sp.StartCol, d.Error())

	line := sourceLine(src, sp.StartLine)
	if line == "" {
		return b.String()
	}
	b.WriteString(line)
	if !strings.HasSuffix(line, "\n") {
		b.WriteByte('\n')
	}

	col := sp.StartCol
	width := 1
	if sp.EndLine == sp.StartLine && sp.EndCol > sp.StartCol {
		width = sp.EndCol - sp.StartCol
	}
	b.WriteString(strings.Repeat(" ", max(col-1, 0)))
	b.WriteString(strings.Repeat("^", max(width, 1)))
	b.WriteByte('\n')
	return b.String()
}

// sourceLine returns the 1-based lineNo-th line of src, without its
// trailing newline, or "" if lineNo is out of range.
func sourceLine(src []byte, lineNo int) string {
	if lineNo < 1 {
		return ""
	}
	line := 1
	start := 0
	for i, b := range src {
		if line == lineNo && b == '\n' {
			return string(src[start:i])
		}
		if b == '\n' {
			line++
			start = i + 1
		}
	}
	if line == lineNo {
		return string(src[start:])
	}
	return ""
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package token

import "fmt"

// Span delimits a source range with 1-based, inclusive-start,
// exclusive-end line/column positions.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol      int
}

// Join returns the span covering both s and other.
func (s Span) Join(other Span) Span {
	j := s
	if before(other.StartLine, other.StartCol, j.StartLine, j.StartCol) {
		j.StartLine, j.StartCol = other.StartLine, other.StartCol
	}
	if before(j.EndLine, j.EndCol, other.EndLine, other.EndCol) {
		j.EndLine, j.EndCol = other.EndLine, other.EndCol
	}
	return j
}

// before reports whether position (l1,c1) is strictly before (l2,c2).
func before(l1, c1, l2, c2 int) bool {
	if l1 != l2 {
		return l1 < l2
	}
	return c1 < c2
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// Contains reports whether s fully covers other, i.e. whether s is a valid
// join-closure parent of other (spec §8's "span coverage" property).
func (s Span) Contains(other Span) bool {
	startOK := s.StartLine < other.StartLine || (s.StartLine == other.StartLine && s.StartCol <= other.StartCol)
	endOK := s.EndLine > other.EndLine || (s.EndLine == other.EndLine && s.EndCol >= other.EndCol)
	return startOK && endOK
}

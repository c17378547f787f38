package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/mainer"
)

// Tokenize runs the lexer over each file in args and prints its tokens.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles is the reusable implementation behind the tokenize
// command, one line per token: "file:line:col: KIND lexeme".
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, path := range files {
		a := arena.New(initialArenaBytes)
		_, lx, err := lexFile(path, a)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			a.Destroy()
			continue
		}
		for _, tok := range lx.Tokens() {
			fmt.Fprintf(stdio.Stdout, "%s:%d:%d: %s %q\n", path, tok.Span.StartLine, tok.Span.StartCol, tok.Kind, tok.Slice)
		}
		a.Destroy()
	}
	if failed {
		return fmt.Errorf("tokenize: one or more files failed")
	}
	return nil
}

package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/diag"
	"github.com/mna/alder/lang/lexer"
	"github.com/mna/alder/lang/parser"
)

// initialArenaBytes is the default initial arena capacity (spec §6: "4
// MiB by default to suppress page-fault jitter during initialization").
const initialArenaBytes = 4 << 20

// lexFile reads path and lexes it into a, returning the source buffer
// and the Lexer that now owns interned copies of its contents.
func lexFile(path string, a *arena.Arena) ([]byte, *lexer.Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	lx := lexer.New(src, a)
	if err := lx.LexAll(); err != nil {
		return src, lx, fmt.Errorf("%s: %w", path, err)
	}
	return src, lx, nil
}

// parseFile lexes and parses path, reporting a parse error (if any)
// against stderr with source context.
func parseFile(stderr io.Writer, path string, a *arena.Arena) (*ast.Program, []byte, *lexer.Lexer, bool) {
	src, lx, err := lexFile(path, a)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, src, lx, false
	}

	p := parser.New(lx.Tokens(), path)
	prog, perr := p.ParseProgram()
	if perr != nil {
		fmt.Fprint(stderr, diag.Render(perr, src))
		return nil, src, lx, false
	}
	return prog, src, lx, true
}

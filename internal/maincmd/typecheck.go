package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/lang/diag"
	"github.com/mna/alder/lang/sema"
	"github.com/mna/alder/lang/types"
	"github.com/mna/mainer"
)

// Typecheck runs the full pipeline (lex, parse, both semantic passes)
// over each file in args, printing the annotated syntax tree and any
// diagnostics found.
func (c *Cmd) Typecheck(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TypecheckFiles(stdio, args...)
}

// TypecheckFiles is the reusable implementation behind the typecheck
// command.
func TypecheckFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, path := range files {
		a := arena.New(initialArenaBytes)
		prog, src, lx, ok := parseFile(stdio.Stderr, path, a)
		if !ok {
			failed = true
			a.Destroy()
			continue
		}

		store := types.New(a, lx.Identifiers(), lx.Keywords())
		tc := sema.NewContext(a, store, lx.Identifiers(), lx.Keywords(), path)
		diags := tc.Check(prog)

		fmt.Fprintf(stdio.Stdout, "-- %s --\n", path)
		PrintProgram(stdio.Stdout, prog)
		for _, d := range diags {
			fmt.Fprint(stdio.Stderr, diag.Render(d, src))
			failed = true
		}
		a.Destroy()
	}
	if failed {
		return fmt.Errorf("typecheck: one or more files failed")
	}
	return nil
}

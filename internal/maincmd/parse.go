package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/mainer"
)

// Parse runs the lexer and parser over each file in args and prints the
// resulting syntax tree.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, args...)
}

// ParseFiles is the reusable implementation behind the parse command.
func ParseFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, path := range files {
		a := arena.New(initialArenaBytes)
		prog, _, _, ok := parseFile(stdio.Stderr, path, a)
		if !ok {
			failed = true
			a.Destroy()
			continue
		}
		fmt.Fprintf(stdio.Stdout, "-- %s --\n", path)
		PrintProgram(stdio.Stdout, prog)
		a.Destroy()
	}
	if failed {
		return fmt.Errorf("parse: one or more files failed")
	}
	return nil
}

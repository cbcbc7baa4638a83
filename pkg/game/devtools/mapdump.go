// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/solver"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// cellSymbol returns the single-character symbol for a light.
func cellSymbol(snap lightsout.Snapshot, p world.Position) rune {
	if snap.Lit(p.Row, p.Col) {
		return '*'
	}
	return '.'
}

// writeBoardGrid writes one line per row with an optional cursor overlay.
func writeBoardGrid(w io.Writer, snap lightsout.Snapshot, cursor *world.Position) {
	for row := 0; row < snap.Rows(); row++ {
		for col := 0; col < snap.Cols(); col++ {
			p := world.Pos(row, col)
			if cursor != nil && *cursor == p {
				if snap.Lit(row, col) {
					fmt.Fprint(w, "@")
				} else {
					fmt.Fprint(w, "o")
				}
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(snap, p))
		}
		fmt.Fprintln(w)
	}
}

// WriteBoardDump writes a debug dump of the session: metadata, legend, the
// board with and without the cursor, and the solver's view of it.
func WriteBoardDump(w io.Writer, g *state.Game) {
	snap := g.Engine.Snapshot()
	opts := g.Options

	fmt.Fprintln(w, "=== BOARD DUMP DEBUG ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "rows: %d\n", snap.Rows())
	fmt.Fprintf(w, "cols: %d\n", snap.Cols())
	fmt.Fprintf(w, "start_probability: %g\n", opts.StartProbability)
	fmt.Fprintf(w, "seed: %d\n", opts.Seed)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "cursor: %d,%d\n", g.Cursor.Row, g.Cursor.Col)
	if g.Hint != nil {
		fmt.Fprintf(w, "hint: %d,%d\n", g.Hint.Row, g.Hint.Col)
	}
	fmt.Fprintf(w, "moves: %d\n", snap.Moves())
	fmt.Fprintf(w, "lit: %d\n", snap.LitCount())
	fmt.Fprintf(w, "won: %v\n", snap.Won())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "* = lit  . = unlit  @ = cursor on lit  o = cursor on unlit")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Board ---")
	writeBoardGrid(w, snap, nil)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Board (with cursor) ---")
	cursor := g.Cursor
	writeBoardGrid(w, snap, &cursor)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Solver ---")
	presses, err := solver.Solve(snap)
	switch {
	case errors.Is(err, solver.ErrUnsolvable):
		fmt.Fprintln(w, "solvable: false")
	case err != nil:
		fmt.Fprintf(w, "error: %v\n", err)
	default:
		fmt.Fprintln(w, "solvable: true")
		fmt.Fprintf(w, "presses: %d\n", presses.Size())

		var list []world.Position
		presses.Each(func(p world.Position) {
			list = append(list, p)
		})
		b := snap.Bounds()
		sort.Slice(list, func(i, j int) bool {
			return b.Index(list[i]) < b.Index(list[j])
		})
		for _, p := range list {
			fmt.Fprintf(w, "  row: %d col: %d\n", p.Row, p.Col)
		}
	}
}

// DumpBoardToFile writes WriteBoardDump output to board.txt in the working
// directory and returns its absolute path.
func DumpBoardToFile(g *state.Game) (string, error) {
	if !g.Engine.Started() {
		return "", fmt.Errorf("no board")
	}

	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteBoardDump(f, g)
	return absPath, nil
}

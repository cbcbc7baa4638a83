package devtools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/config"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

func newGame(t *testing.T, rows, cols int, chance float64) *state.Game {
	t.Helper()
	opts := config.Defaults()
	opts.Rows, opts.Cols, opts.StartProbability = rows, cols, chance
	g, err := state.NewGame(opts, lightsout.NewSource(11), nil)
	if err != nil {
		t.Fatalf("state.NewGame = %v", err)
	}
	return g
}

func TestWriteBoardDump_GridAndSolution(t *testing.T) {
	g := newGame(t, 3, 3, 0)
	if _, err := g.Engine.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	g.SetCursor(world.Pos(0, 0))

	var buf bytes.Buffer
	WriteBoardDump(&buf, g)
	out := buf.String()

	for _, want := range []string{
		"rows: 3",
		"moves: 1",
		"lit: 5",
		"--- Board ---\n.*.\n***\n.*.\n",
		"--- Board (with cursor) ---\no*.\n***\n.*.\n",
		"solvable: true",
		"presses: 1",
		"  row: 1 col: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBoardDump_ReachableBoardIsSolvable(t *testing.T) {
	// 5x5 boards are not all solvable, but any board made by presses is.
	g := newGame(t, 5, 5, 0)
	for _, p := range []world.Position{world.Pos(0, 0), world.Pos(0, 1), world.Pos(1, 0)} {
		if _, err := g.Engine.Toggle(p.Row, p.Col); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	WriteBoardDump(&buf, g)
	if !strings.Contains(buf.String(), "solvable: true") {
		t.Errorf("board built from presses reported unsolvable:\n%s", buf.String())
	}
}

func TestDumpBoardToFile(t *testing.T) {
	g := newGame(t, 2, 2, 1)
	t.Chdir(t.TempDir())

	path, err := DumpBoardToFile(g)
	if err != nil {
		t.Fatalf("DumpBoardToFile = %v", err)
	}
	if !strings.HasSuffix(path, boardDumpFilename) {
		t.Errorf("path = %q, want it to end in %s", path, boardDumpFilename)
	}
}

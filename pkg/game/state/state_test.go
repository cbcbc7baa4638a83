package state

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/config"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
)

func TestMain(m *testing.M) {
	locale.Init()
	os.Exit(m.Run())
}

func newTestGame(t *testing.T, rows, cols int, chance float64) *Game {
	t.Helper()
	opts := config.Defaults()
	opts.Rows, opts.Cols, opts.StartProbability = rows, cols, chance
	g, err := NewGame(opts, lightsout.NewSource(7), nil)
	if err != nil {
		t.Fatalf("NewGame(%dx%d, %v) = %v", rows, cols, chance, err)
	}
	return g
}

func TestNewGame_DealsBoard(t *testing.T) {
	g := newTestGame(t, 4, 6, 1)
	snap := g.Engine.Snapshot()
	if snap.Rows() != 4 || snap.Cols() != 6 {
		t.Errorf("board = %dx%d, want 4x6", snap.Rows(), snap.Cols())
	}
	if snap.LitCount() != 24 {
		t.Errorf("LitCount() = %d, want 24", snap.LitCount())
	}
	if g.Cursor != world.Pos(2, 3) {
		t.Errorf("Cursor = %v, want 2:3", g.Cursor)
	}
	if len(g.Messages) != 1 || !strings.Contains(g.Messages[0], "4x6") {
		t.Errorf("Messages = %v, want a new board announcement", g.Messages)
	}
}

func TestNewGame_AlreadyDarkAnnouncement(t *testing.T) {
	g := newTestGame(t, 3, 3, 0)
	if len(g.Messages) != 1 || !strings.Contains(g.Messages[0], "already dark") {
		t.Errorf("Messages = %v, want the already dark announcement", g.Messages)
	}
}

func TestNewGame_InvalidOptions(t *testing.T) {
	opts := config.Defaults()
	opts.Rows = 0
	if _, err := NewGame(opts, lightsout.NewSource(1), nil); !errors.Is(err, lightsout.ErrInvalidDimension) {
		t.Errorf("NewGame(rows=0) = %v, want ErrInvalidDimension", err)
	}
}

func TestRestart_ResetsCursorAndHint(t *testing.T) {
	g := newTestGame(t, 5, 5, 0.5)
	g.Cursor = world.Pos(0, 0)
	hint := world.Pos(1, 1)
	g.Hint = &hint
	if _, err := g.Engine.Toggle(0, 0); err != nil {
		t.Fatal(err)
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart() = %v", err)
	}
	if g.Cursor != world.Pos(2, 2) {
		t.Errorf("Cursor = %v, want 2:2", g.Cursor)
	}
	if g.Hint != nil {
		t.Errorf("Hint = %v, want nil", *g.Hint)
	}
	if g.Engine.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", g.Engine.Moves())
	}
}

func TestMoveCursor_ClampsToBoard(t *testing.T) {
	g := newTestGame(t, 2, 3, 0)
	g.SetCursor(world.Pos(0, 0))

	g.MoveCursor(world.North)
	g.MoveCursor(world.West)
	if g.Cursor != world.Pos(0, 0) {
		t.Errorf("Cursor after moving off the top-left = %v, want 0:0", g.Cursor)
	}

	for i := 0; i < 5; i++ {
		g.MoveCursor(world.East)
		g.MoveCursor(world.South)
	}
	if g.Cursor != world.Pos(1, 2) {
		t.Errorf("Cursor after moving off the bottom-right = %v, want 1:2", g.Cursor)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newTestGame(t, 1, 1, 0)
	g.ClearMessages()
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	want := []string{"c", "d", "e", "f", "g"}
	if strings.Join(g.Messages, "") != strings.Join(want, "") {
		t.Errorf("Messages = %v, want %v", g.Messages, want)
	}
}

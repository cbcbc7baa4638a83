package gameplay

import (
	"os"
	"strings"
	"testing"

	engineinput "github.com/arturogbruno/lights-out-game/pkg/engine/input"
	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/config"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

func TestMain(m *testing.M) {
	locale.Init()
	os.Exit(m.Run())
}

// litSource lights exactly the row-major indices marked in lit when used with
// a start probability of 0.5.
type litSource struct {
	lit []bool
	i   int
}

func (s *litSource) Float64() float64 {
	v := 0.9
	if s.lit[s.i%len(s.lit)] {
		v = 0.1
	}
	s.i++
	return v
}

// makeGame creates a session on a rows x cols board with only the given
// positions lit.
func makeGame(t *testing.T, rows, cols int, lit ...world.Position) *state.Game {
	t.Helper()
	b := world.Bounds{Rows: rows, Cols: cols}
	marks := make([]bool, b.Area())
	for _, p := range lit {
		marks[b.Index(p)] = true
	}
	opts := config.Defaults()
	opts.Rows, opts.Cols, opts.StartProbability = rows, cols, 0.5
	g, err := state.NewGame(opts, &litSource{lit: marks}, nil)
	if err != nil {
		t.Fatalf("state.NewGame = %v", err)
	}
	g.ClearMessages()
	return g
}

func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

func TestProcessIntent_SingleCellGame(t *testing.T) {
	g := makeGame(t, 1, 1)
	toggle := engineinput.Intent{Action: engineinput.ActionToggle}

	if err := ProcessIntent(g, toggle); err != nil {
		t.Fatal(err)
	}
	if !g.Engine.Snapshot().Lit(0, 0) || g.Engine.IsWon() {
		t.Fatal("after first toggle the light should be on and the game not won")
	}

	if err := ProcessIntent(g, toggle); err != nil {
		t.Fatal(err)
	}
	if !g.Engine.IsWon() {
		t.Fatal("after second toggle the game should be won")
	}
	if got := lastMessage(g); !strings.Contains(got, "2 moves") {
		t.Errorf("win message = %q, want it to mention 2 moves", got)
	}

	if err := ProcessIntent(g, toggle); err != nil {
		t.Fatal(err)
	}
	if g.Engine.Moves() != 2 {
		t.Errorf("Moves() = %d after a press on a won board, want 2", g.Engine.Moves())
	}
	if got := lastMessage(g); got != locale.T("ALREADY_WON") {
		t.Errorf("message = %q, want the already won notice", got)
	}
}

func TestProcessIntent_Movement(t *testing.T) {
	g := makeGame(t, 3, 3)
	tests := []struct {
		action engineinput.Action
		want   world.Position
	}{
		{engineinput.ActionMoveNorth, world.Pos(0, 1)},
		{engineinput.ActionMoveNorth, world.Pos(0, 1)},
		{engineinput.ActionMoveWest, world.Pos(0, 0)},
		{engineinput.ActionMoveSouth, world.Pos(1, 0)},
		{engineinput.ActionMoveEast, world.Pos(1, 1)},
	}
	for i, tt := range tests {
		if err := ProcessIntent(g, engineinput.Intent{Action: tt.action}); err != nil {
			t.Fatal(err)
		}
		if g.Cursor != tt.want {
			t.Errorf("step %d (%s): Cursor = %v, want %v", i, engineinput.ActionName(tt.action), g.Cursor, tt.want)
		}
	}
}

func TestProcessIntent_NoneChangesNothing(t *testing.T) {
	g := makeGame(t, 2, 2, world.Pos(0, 0))
	before := g.Engine.State()
	if err := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNone}); err != nil {
		t.Fatal(err)
	}
	after := g.Engine.State()
	for r := range before.Cells {
		for c := range before.Cells[r] {
			if before.Cells[r][c] != after.Cells[r][c] {
				t.Errorf("cell %d:%d changed on ActionNone", r, c)
			}
		}
	}
	if len(g.Messages) != 0 {
		t.Errorf("Messages = %v, want none", g.Messages)
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	g := makeGame(t, 2, 2)
	if err := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit}); err != nil {
		t.Fatal(err)
	}
	if !g.QuitRequested {
		t.Error("QuitRequested = false after quit intent, want true")
	}
}

func TestProcessIntent_NewGameResetsMoves(t *testing.T) {
	g := makeGame(t, 3, 3)
	ToggleAt(g, world.Pos(0, 0))
	if g.Engine.Moves() != 1 {
		t.Fatalf("Moves() = %d, want 1", g.Engine.Moves())
	}
	if err := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNewGame}); err != nil {
		t.Fatal(err)
	}
	if g.Engine.Moves() != 0 {
		t.Errorf("Moves() after new game = %d, want 0", g.Engine.Moves())
	}
}

func TestToggleAt_MovesCursorAndClearsHint(t *testing.T) {
	g := makeGame(t, 3, 3, world.Pos(0, 0))
	hint := world.Pos(2, 2)
	g.Hint = &hint

	ToggleAt(g, world.Pos(2, 0))

	if g.Cursor != world.Pos(2, 0) {
		t.Errorf("Cursor = %v, want 2:0", g.Cursor)
	}
	if g.Hint != nil {
		t.Errorf("Hint = %v after a press, want nil", *g.Hint)
	}
}

func TestToggleAt_OutOfBounds(t *testing.T) {
	g := makeGame(t, 2, 2, world.Pos(1, 1))
	ToggleAt(g, world.Pos(5, 5))

	if g.Engine.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", g.Engine.Moves())
	}
	if g.Cursor == world.Pos(5, 5) {
		t.Error("Cursor moved off the board")
	}
	if got := lastMessage(g); got != locale.T("OUT_OF_BOUNDS") {
		t.Errorf("message = %q, want the out of bounds notice", got)
	}
}

func TestShowHint_SuggestsPress(t *testing.T) {
	b := world.Bounds{Rows: 3, Cols: 3}
	g := makeGame(t, 3, 3, b.PlusShape(world.Pos(1, 1))...)
	g.SetCursor(world.Pos(0, 0))

	ShowHint(g)

	if g.Hint == nil || *g.Hint != world.Pos(1, 1) {
		t.Fatalf("Hint = %v, want 1:1", g.Hint)
	}
	if got := lastMessage(g); got != "Try pressing row 2, column 2." {
		t.Errorf("message = %q", got)
	}

	ToggleAt(g, *g.Hint)
	if !g.Engine.IsWon() {
		t.Error("following the hint did not clear the board")
	}
}

func TestShowHint_SolvedAndUnsolvable(t *testing.T) {
	dark := makeGame(t, 2, 2)
	ShowHint(dark)
	if dark.Hint != nil || lastMessage(dark) != locale.T("HINT_SOLVED") {
		t.Errorf("dark board: Hint = %v, message = %q", dark.Hint, lastMessage(dark))
	}

	stuck := makeGame(t, 5, 5, world.Pos(0, 0))
	ShowHint(stuck)
	if stuck.Hint != nil || lastMessage(stuck) != locale.T("HINT_UNSOLVABLE") {
		t.Errorf("unsolvable board: Hint = %v, message = %q", stuck.Hint, lastMessage(stuck))
	}
}

func TestToggleAt_NoGame(t *testing.T) {
	g := makeGame(t, 2, 2)
	g.Engine = lightsout.NewEngine(lightsout.NewSource(1))
	ToggleAt(g, world.Pos(0, 0))
	if g.Engine.Started() {
		t.Error("Started() = true, want false")
	}
}

func TestProcessIntent_DumpBoard(t *testing.T) {
	t.Chdir(t.TempDir())
	g := makeGame(t, 2, 2, world.Pos(0, 0))

	if err := ProcessIntent(g, engineinput.IntentFor(engineinput.DeviceKeyboard, "D")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat("board.txt"); err != nil {
		t.Errorf("board.txt not written: %v", err)
	}
	if got := lastMessage(g); !strings.Contains(got, "board.txt") {
		t.Errorf("message = %q, want the dump path", got)
	}
}

package gameplay

import (
	"errors"

	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/solver"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// ShowHint asks the solver for the press nearest the cursor and marks it on
// the board.
func ShowHint(g *state.Game) {
	g.Hint = nil
	press, err := solver.Hint(g.Engine.Snapshot(), g.Cursor)
	switch {
	case errors.Is(err, solver.ErrSolved):
		g.AddMessage(locale.T("HINT_SOLVED"))
	case errors.Is(err, solver.ErrUnsolvable):
		g.Logger.Info("board has no solution")
		g.AddMessage(locale.T("HINT_UNSOLVABLE"))
	case err != nil:
		g.Logger.Error("hint failed", "error", err)
	default:
		g.Hint = &press
		g.Logger.Debug("hint", "press", press)
		// Rows and columns are shown to the player counting from one.
		g.AddMessage(locale.T("HINT_PRESS", press.Row+1, press.Col+1))
	}
}

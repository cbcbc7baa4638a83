package gameplay

import (
	"errors"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// ToggleAt presses the light at pos and reports the outcome in the message
// log. Pointer front ends call it directly; the keyboard path presses the
// cursor cell. The cursor follows the press.
func ToggleAt(g *state.Game, pos world.Position) {
	res, err := g.Engine.Toggle(pos.Row, pos.Col)
	switch {
	case errors.Is(err, lightsout.ErrGameAlreadyWon):
		g.AddMessage(locale.T("ALREADY_WON"))
		return
	case errors.Is(err, lightsout.ErrOutOfBounds):
		g.Logger.Debug("toggle outside the board", "position", pos)
		g.AddMessage(locale.T("OUT_OF_BOUNDS"))
		return
	case err != nil:
		g.Logger.Error("toggle failed", "position", pos, "error", err)
		return
	}

	g.Cursor = pos
	g.Hint = nil

	g.Logger.Debug("toggled", "position", pos, "flipped", len(res.Flipped), "moves", g.Engine.Moves())
	if res.Won {
		moves := g.Engine.Moves()
		g.Logger.Info("board cleared", "moves", moves)
		g.AddMessage(locale.T("YOU_WIN_IN", moves))
	}
}

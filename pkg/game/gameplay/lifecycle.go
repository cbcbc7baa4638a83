package gameplay

import (
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// NewBoard abandons the current board and deals a fresh one.
func NewBoard(g *state.Game) error {
	if g.Engine.Started() && !g.Engine.IsWon() {
		g.Logger.Info("board abandoned", "moves", g.Engine.Moves(), "lit", g.Engine.Snapshot().LitCount())
	}
	return g.Restart()
}

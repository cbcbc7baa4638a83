package gameplay

import (
	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// MoveCursor moves the cursor one cell in dir, stopping at the board edge.
func MoveCursor(g *state.Game, dir world.Direction) {
	before := g.Cursor
	g.MoveCursor(dir)
	if g.Cursor != before {
		g.Logger.Debug("cursor moved", "direction", dir, "cursor", g.Cursor)
	}
}

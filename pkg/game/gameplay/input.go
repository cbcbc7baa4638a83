// Package gameplay applies player intents to a play session.
package gameplay

import (
	engineinput "github.com/arturogbruno/lights-out-game/pkg/engine/input"
	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/devtools"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// The only error it returns comes from dealing a new board.
func ProcessIntent(g *state.Game, intent engineinput.Intent) error {
	switch intent.Action {
	case engineinput.ActionNone:
		return nil

	case engineinput.ActionMoveNorth:
		MoveCursor(g, world.North)
	case engineinput.ActionMoveSouth:
		MoveCursor(g, world.South)
	case engineinput.ActionMoveWest:
		MoveCursor(g, world.West)
	case engineinput.ActionMoveEast:
		MoveCursor(g, world.East)

	case engineinput.ActionToggle:
		ToggleAt(g, g.Cursor)

	case engineinput.ActionNewGame:
		return NewBoard(g)

	case engineinput.ActionHint:
		ShowHint(g)

	case engineinput.ActionDumpBoard:
		path, err := devtools.DumpBoardToFile(g)
		if err != nil {
			g.Logger.Error("board dump failed", "error", err)
			g.AddMessage(locale.T("DUMP_FAILED", err))
		} else {
			g.AddMessage(locale.T("BOARD_DUMPED", path))
		}

	case engineinput.ActionQuit:
		g.Logger.Info("quit requested", "moves", g.Engine.Moves())
		g.AddMessage(locale.T("GOODBYE"))
		g.QuitRequested = true
	}
	return nil
}

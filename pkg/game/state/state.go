// Package state holds the play session wrapped around a Lights Out engine.
package state

import (
	"io"
	"log/slog"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/config"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
)

// maxMessages is how many lines the message log keeps.
const maxMessages = 5

// Game represents one play session: the board plus everything the front ends
// draw around it.
type Game struct {
	Engine  *lightsout.Engine
	Options config.Options

	Cursor world.Position

	// Hint is the press suggested by the last hint request, nil when none.
	Hint *world.Position

	Messages []string

	QuitRequested bool

	Logger *slog.Logger
}

// NewGame creates a session and deals its first board. A nil logger discards
// output.
func NewGame(opts config.Options, src lightsout.Source, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Game{
		Engine:   lightsout.NewEngine(src),
		Options:  opts,
		Messages: make([]string, 0),
		Logger:   logger,
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart deals a fresh board with the session options. The cursor returns to
// the centre of the board and any hint is cleared.
func (g *Game) Restart() error {
	o := g.Options
	if err := g.Engine.NewGame(o.Rows, o.Cols, o.StartProbability); err != nil {
		g.Logger.Error("failed to start game", "rows", o.Rows, "cols", o.Cols, "chance", o.StartProbability, "error", err)
		return err
	}

	g.Cursor = world.Pos(o.Rows/2, o.Cols/2)
	g.Hint = nil

	snap := g.Engine.Snapshot()
	g.Logger.Info("new game", "rows", o.Rows, "cols", o.Cols, "chance", o.StartProbability, "lit", snap.LitCount())
	if snap.Won() {
		g.AddMessage(locale.T("NEW_GAME_WON", o.Rows, o.Cols))
	} else {
		g.AddMessage(locale.T("NEW_GAME", o.Rows, o.Cols))
	}
	return nil
}

// MoveCursor moves the cursor one cell, staying on the board.
func (g *Game) MoveCursor(dir world.Direction) {
	g.Cursor = g.Engine.Bounds().Clamp(g.Cursor.Step(dir))
}

// SetCursor places the cursor on p, clamped to the board.
func (g *Game) SetCursor(p world.Position) {
	g.Cursor = g.Engine.Bounds().Clamp(p)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

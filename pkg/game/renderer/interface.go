// Package renderer defines the front ends that draw a play session and feed
// player input back into it, plus the layout and markup helpers they share.
package renderer

import (
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleAction
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for game rendering backends
// Implementations include the terminal (TUI) and Ebiten window front ends.
type Renderer interface {
	// Init prepares the renderer (colors, fonts, window, etc.)
	Init() error

	// Run draws the session and applies player input until the player quits.
	Run(g *state.Game) error
}

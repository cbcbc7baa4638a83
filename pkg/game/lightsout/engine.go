// Package lightsout implements the Lights Out grid state machine: board
// generation, the plus-shaped toggle rule and win detection.
//
// An Engine owns exactly one board at a time and is driven by a single
// serialized stream of commands; it does no locking. Collaborators read the
// board through Snapshot or State, which never alias the live cells.
package lightsout

import (
	"fmt"
	"math"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
)

// ToggleResult reports the outcome of a successful Toggle.
type ToggleResult struct {
	Won     bool
	Flipped []world.Position
}

// Engine holds the board of the current game.
type Engine struct {
	src    Source
	bounds world.Bounds
	cells  [][]bool
	moves  int

	// finished is set by the toggle that clears the board and locks it
	// until the next NewGame. It never stands in for IsWon.
	finished bool
}

// NewEngine creates an engine drawing board randomness from src.
// A nil src gets a private time-seeded source.
func NewEngine(src Source) *Engine {
	if src == nil {
		src = NewTimeSource()
	}
	return &Engine{src: src}
}

// Validate checks the parameters of a new game.
func Validate(rows, cols int, startProbability float64) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d, rows and cols must be at least 1", ErrInvalidDimension, rows, cols)
	}
	if math.IsNaN(startProbability) || startProbability < 0 || startProbability > 1 {
		return fmt.Errorf("%w: %v is outside [0, 1]", ErrInvalidProbability, startProbability)
	}
	return nil
}

// NewGame replaces the current board with a fresh rows × cols board where each
// cell is lit independently with probability startProbability. On error the
// current board is left as it was.
func (e *Engine) NewGame(rows, cols int, startProbability float64) error {
	if err := Validate(rows, cols, startProbability); err != nil {
		return err
	}

	cells := make([][]bool, rows)
	for row := range cells {
		cells[row] = make([]bool, cols)
		for col := range cells[row] {
			cells[row][col] = e.src.Float64() < startProbability
		}
	}

	e.bounds = world.Bounds{Rows: rows, Cols: cols}
	e.cells = cells
	e.moves = 0
	e.finished = false
	return nil
}

// Started returns true once NewGame has succeeded.
func (e *Engine) Started() bool {
	return e.cells != nil
}

// Bounds returns the dimensions of the current board.
func (e *Engine) Bounds() world.Bounds {
	return e.bounds
}

// Moves returns the number of toggles applied since the last NewGame.
func (e *Engine) Moves() int {
	return e.moves
}

// Toggle flips the cell at (row, col) and its orthogonal neighbours. Neighbours
// outside the board are skipped; the centre itself must be on the board.
// After a toggle wins the game every further Toggle is rejected until NewGame.
// A board generated already dark reports IsWon but still accepts toggles.
func (e *Engine) Toggle(row, col int) (ToggleResult, error) {
	if !e.Started() {
		return ToggleResult{}, ErrNoGame
	}
	center := world.Pos(row, col)
	if !e.bounds.Contains(center) {
		return ToggleResult{}, fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, center, e.bounds.Rows, e.bounds.Cols)
	}
	if e.finished {
		return ToggleResult{}, fmt.Errorf("%w: toggle at %v", ErrGameAlreadyWon, center)
	}

	flipped := e.bounds.PlusShape(center)
	for _, p := range flipped {
		e.cells[p.Row][p.Col] = !e.cells[p.Row][p.Col]
	}
	e.moves++

	won := e.IsWon()
	if won {
		e.finished = true
	}
	return ToggleResult{Won: won, Flipped: flipped}, nil
}

// IsWon returns true when every cell is off. It is false before the first game.
func (e *Engine) IsWon() bool {
	if !e.Started() {
		return false
	}
	return allOff(e.cells)
}

func allOff(cells [][]bool) bool {
	for _, row := range cells {
		for _, lit := range row {
			if lit {
				return false
			}
		}
	}
	return true
}

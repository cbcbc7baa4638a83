package lightsout

import "github.com/arturogbruno/lights-out-game/pkg/engine/world"

// Snapshot is a read-only copy of a board taken at one point in time.
// The zero value describes an empty 0x0 board.
type Snapshot struct {
	bounds world.Bounds
	cells  []bool // row-major
	won    bool
	moves  int
}

// State is the plain-value form of a board for collaborators that want fields
// rather than accessors.
type State struct {
	Rows  int
	Cols  int
	Cells [][]bool
	Won   bool
}

// Snapshot copies the current board.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		bounds: e.bounds,
		won:    e.IsWon(),
		moves:  e.moves,
	}
	if !e.Started() {
		return s
	}
	s.cells = make([]bool, 0, e.bounds.Area())
	for _, row := range e.cells {
		s.cells = append(s.cells, row...)
	}
	return s
}

// State returns the current board as a State value.
func (e *Engine) State() State {
	return e.Snapshot().State()
}

// Rows returns the number of rows
func (s Snapshot) Rows() int {
	return s.bounds.Rows
}

// Cols returns the number of columns
func (s Snapshot) Cols() int {
	return s.bounds.Cols
}

// Bounds returns the board dimensions.
func (s Snapshot) Bounds() world.Bounds {
	return s.bounds
}

// Lit reports whether the cell at (row, col) is lit. Positions off the board
// report false.
func (s Snapshot) Lit(row, col int) bool {
	if !s.bounds.IsValidPosition(row, col) || s.cells == nil {
		return false
	}
	return s.cells[s.bounds.Index(world.Pos(row, col))]
}

// Won reports whether the board was won when the snapshot was taken.
func (s Snapshot) Won() bool {
	return s.won
}

// Moves returns the move count at the time of the snapshot.
func (s Snapshot) Moves() int {
	return s.moves
}

// LitCount returns the number of lit cells.
func (s Snapshot) LitCount() int {
	n := 0
	for _, lit := range s.cells {
		if lit {
			n++
		}
	}
	return n
}

// Cells returns a fresh rows × cols copy of the board.
func (s Snapshot) Cells() [][]bool {
	if s.cells == nil {
		return nil
	}
	cells := make([][]bool, s.bounds.Rows)
	for row := range cells {
		cells[row] = make([]bool, s.bounds.Cols)
		copy(cells[row], s.cells[row*s.bounds.Cols:(row+1)*s.bounds.Cols])
	}
	return cells
}

// State converts the snapshot to a State value.
func (s Snapshot) State() State {
	return State{
		Rows:  s.bounds.Rows,
		Cols:  s.bounds.Cols,
		Cells: s.Cells(),
		Won:   s.won,
	}
}

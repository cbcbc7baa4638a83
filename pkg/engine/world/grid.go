// Package world provides generic 2D grid primitives: positions, bounds and
// the neighbourhood shapes built from them. These are engine-level constructs
// with no knowledge of any particular game's cell contents.
package world

import "fmt"

// Position is a row/column coordinate on a grid.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position one cell away in the given direction.
// The result may lie outside any grid; check it with Bounds.Contains.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// ManhattanDistance returns |Δrow| + |Δcol| between two positions.
func (p Position) ManhattanDistance(o Position) int {
	rowDist := p.Row - o.Row
	colDist := p.Col - o.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Bounds describes a rows × cols rectangle anchored at (0,0).
type Bounds struct {
	Rows int
	Cols int
}

// Contains checks if a position is within the bounds
func (b Bounds) Contains(p Position) bool {
	return b.IsValidPosition(p.Row, p.Col)
}

// IsValidPosition checks if a row/col position is within the bounds
func (b Bounds) IsValidPosition(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Area returns the number of cells inside the bounds.
func (b Bounds) Area() int {
	if b.Rows <= 0 || b.Cols <= 0 {
		return 0
	}
	return b.Rows * b.Cols
}

// Index returns the row-major index of p. The caller must ensure p is in bounds.
func (b Bounds) Index(p Position) int {
	return p.Row*b.Cols + p.Col
}

// At returns the position at row-major index i.
func (b Bounds) At(i int) Position {
	return Position{Row: i / b.Cols, Col: i % b.Cols}
}

// Clamp moves p to the nearest position inside the bounds.
func (b Bounds) Clamp(p Position) Position {
	p.Row = min(max(p.Row, 0), b.Rows-1)
	p.Col = min(max(p.Col, 0), b.Cols-1)
	return p
}

// ForEach calls fn for every position in row-major order.
func (b Bounds) ForEach(fn func(p Position)) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			fn(Position{Row: row, Col: col})
		}
	}
}

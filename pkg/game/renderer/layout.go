package renderer

import (
	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
)

// BoardLayout places a board on a drawing surface. Units are pixels for
// graphical front ends and character cells for the terminal.
type BoardLayout struct {
	Bounds world.Bounds

	OriginX, OriginY      int
	CellWidth, CellHeight int
	Gap                   int
}

// NewBoardLayout centres a board of cellW x cellH cells separated by gap on a
// surface of surfaceW x surfaceH. A board larger than the surface is anchored
// at the top-left corner.
func NewBoardLayout(b world.Bounds, surfaceW, surfaceH, cellW, cellH, gap int) BoardLayout {
	l := BoardLayout{Bounds: b, CellWidth: cellW, CellHeight: cellH, Gap: gap}
	w, h := l.Size()
	l.OriginX = max((surfaceW-w)/2, 0)
	l.OriginY = max((surfaceH-h)/2, 0)
	return l
}

// FitBoardLayout picks the largest square cell that lets the board fit in a
// surface of surfaceW x surfaceH, never smaller than minCell, and centres it.
func FitBoardLayout(b world.Bounds, surfaceW, surfaceH, gap, minCell int) BoardLayout {
	cell := minCell
	if b.Cols > 0 && b.Rows > 0 {
		byW := (surfaceW - gap*(b.Cols-1)) / b.Cols
		byH := (surfaceH - gap*(b.Rows-1)) / b.Rows
		cell = max(min(byW, byH), minCell)
	}
	return NewBoardLayout(b, surfaceW, surfaceH, cell, cell, gap)
}

// Size returns the width and height the whole board occupies.
func (l BoardLayout) Size() (w, h int) {
	if l.Bounds.Cols == 0 || l.Bounds.Rows == 0 {
		return 0, 0
	}
	w = l.Bounds.Cols*l.CellWidth + (l.Bounds.Cols-1)*l.Gap
	h = l.Bounds.Rows*l.CellHeight + (l.Bounds.Rows-1)*l.Gap
	return w, h
}

// CellOrigin returns the top-left corner of the cell at p.
func (l BoardLayout) CellOrigin(p world.Position) (x, y int) {
	x = l.OriginX + p.Col*(l.CellWidth+l.Gap)
	y = l.OriginY + p.Row*(l.CellHeight+l.Gap)
	return x, y
}

// CellAt returns the cell under the surface point (x, y). Points in the gaps
// between cells or off the board report false.
func (l BoardLayout) CellAt(x, y int) (world.Position, bool) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return world.Position{}, false
	}
	pitchX, pitchY := l.CellWidth+l.Gap, l.CellHeight+l.Gap
	if pitchX <= 0 || pitchY <= 0 {
		return world.Position{}, false
	}
	if dx%pitchX >= l.CellWidth || dy%pitchY >= l.CellHeight {
		return world.Position{}, false
	}
	p := world.Pos(dy/pitchY, dx/pitchX)
	if !l.Bounds.Contains(p) {
		return world.Position{}, false
	}
	return p, true
}

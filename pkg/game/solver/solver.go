// Package solver finds press sets that clear a Lights Out board.
//
// Each cell is a variable over GF(2): pressing cell j flips every cell in its
// plus shape, so a board b is cleared by presses x exactly when A·x = b, with
// A the symmetric adjacency-plus-identity matrix. Solve runs Gauss-Jordan
// elimination on the augmented matrix and sets free variables to zero.
package solver

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
)

var (
	// ErrUnsolvable means no combination of presses turns every light off.
	ErrUnsolvable = errors.New("board cannot be cleared")
	// ErrSolved means there is nothing left to press.
	ErrSolved = errors.New("board is already dark")
)

// Solve returns a set of presses that turns every light of snap off.
// Pressing order does not matter.
func Solve(snap lightsout.Snapshot) (mapset.Set[world.Position], error) {
	b := snap.Bounds()
	n := b.Area()
	presses := mapset.New[world.Position]()
	if n == 0 {
		return presses, nil
	}

	// Column n holds the augmented lit value.
	m := make([]bitset, n)
	for i := range m {
		p := b.At(i)
		row := newBitset(n + 1)
		for _, q := range b.PlusShape(p) {
			row.set(b.Index(q))
		}
		if snap.Lit(p.Row, p.Col) {
			row.set(n)
		}
		m[i] = row
	}

	pivots := make([]int, 0, n)
	rank := 0
	for col := 0; col < n && rank < n; col++ {
		pivot := -1
		for i := rank; i < n; i++ {
			if m[i].has(col) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		for i := 0; i < n; i++ {
			if i != rank && m[i].has(col) {
				m[i].xor(m[rank])
			}
		}
		pivots = append(pivots, col)
		rank++
	}

	// A zero row with a lit augmented bit is 0 = 1.
	for i := rank; i < n; i++ {
		if m[i].has(n) {
			return mapset.New[world.Position](), ErrUnsolvable
		}
	}

	for i, col := range pivots {
		if m[i].has(n) {
			presses.Put(b.At(col))
		}
	}
	return presses, nil
}

// Hint returns the press from a solution of snap that is closest to from,
// breaking ties in row-major order.
func Hint(snap lightsout.Snapshot, from world.Position) (world.Position, error) {
	if snap.LitCount() == 0 {
		return world.Position{}, ErrSolved
	}
	presses, err := Solve(snap)
	if err != nil {
		return world.Position{}, err
	}

	b := snap.Bounds()
	best, found := world.Position{}, false
	presses.Each(func(p world.Position) {
		if !found || closer(b, from, p, best) {
			best, found = p, true
		}
	})
	if !found {
		return world.Position{}, ErrSolved
	}
	return best, nil
}

func closer(b world.Bounds, from, p, q world.Position) bool {
	dp, dq := from.ManhattanDistance(p), from.ManhattanDistance(q)
	if dp != dq {
		return dp < dq
	}
	return b.Index(p) < b.Index(q)
}

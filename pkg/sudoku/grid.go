package sudoku

import "math/bits"

// grid is the working board: one candidate bitmask per cell, bit k set
// meaning value k+1 is still possible. A singleton mask is a solved
// cell; a zero mask is a contradiction.
//
// grid is a plain value type. Copying it copies the whole board, which
// the search exploits to snapshot state before a guess.
type grid struct {
	cells [cellCount]uint16
}

// newGrid returns a board with every value open in every cell.
func newGrid() grid {
	var g grid
	for i := range g.cells {
		g.cells[i] = allCandidates
	}
	return g
}

// candidateBit converts a value 1..9 to its mask bit.
func candidateBit(v uint8) uint16 {
	return 1 << (v - 1)
}

// has reports whether value v is still a candidate at pos.
func (g *grid) has(pos int, v uint8) bool {
	return g.cells[pos]&candidateBit(v) != 0
}

// solved reports whether the cell holds exactly one candidate.
func (g *grid) solved(pos int) bool {
	return bits.OnesCount16(g.cells[pos]) == 1
}

// value returns the cell's value if solved, 0 otherwise.
func (g *grid) value(pos int) uint8 {
	if !g.solved(pos) {
		return 0
	}
	return uint8(bits.TrailingZeros16(g.cells[pos])) + 1
}

// remove clears candidate v at pos without propagating consequences.
// It reports the resulting domain size so the caller can react to a
// newly solved cell (1) or a contradiction (0).
func (g *grid) remove(pos int, v uint8) int {
	g.cells[pos] &^= candidateBit(v)
	return bits.OnesCount16(g.cells[pos])
}

// complete reports whether every cell is solved.
func (g *grid) complete() bool {
	for pos := range g.cells {
		if bits.OnesCount16(g.cells[pos]) != 1 {
			return false
		}
	}
	return true
}

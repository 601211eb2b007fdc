package sudoku

import (
	"math/bits"
	"time"
)

// Stats describes the work one Solve call performed.
type Stats struct {
	// Guesses counts tentative candidate assignments taken at choice
	// points. A puzzle propagation solves outright has zero guesses.
	Guesses int

	// Backtracks counts guesses abandoned after leading to a
	// contradiction.
	Backtracks int

	// Duration is the wall-clock time of the whole solve.
	Duration time.Duration
}

// Solve searches for a completion of the puzzle. It first propagates
// the givens to a fixed point, then resolves remaining choice points
// with a minimum-remaining-values backtracking search, candidates
// tried in ascending order. The first completion found is returned;
// the same puzzle always yields the same completion.
//
// ok is false when the puzzle is well-formed but has no completion.
// Stats are valid either way.
func (p *Puzzle) Solve() (sol *Solution, stats Stats, ok bool) {
	ensureGeometry()
	start := time.Now()
	defer func() { stats.Duration = time.Since(start) }()

	g := newGrid()
	for pos, v := range p.givens {
		if v != 0 && !assign(&g, pos, v) {
			return nil, stats, false
		}
	}
	if !search(&g, &stats) {
		return nil, stats, false
	}

	sol = &Solution{}
	for pos := range g.cells {
		sol.cells[pos] = g.value(pos)
	}
	return sol, stats, true
}

// search resolves one choice point and recurses. On entry the grid is
// propagation-stable and contradiction-free; assign keeps it that way
// below each guess.
func search(g *grid, stats *Stats) bool {
	if g.complete() {
		return true
	}

	pos := branchCell(g)
	cands := g.cells[pos]
	for v := uint8(1); v <= gridSize; v++ {
		if cands&candidateBit(v) == 0 {
			continue
		}
		stats.Guesses++
		saved := g.cells
		if assign(g, pos, v) && search(g, stats) {
			return true
		}
		g.cells = saved
		stats.Backtracks++
	}
	return false
}

// branchCell picks the unsolved cell with the fewest candidates,
// lowest row-major index on ties. The tie-break is what makes repeated
// solves of one puzzle land on the same completion.
func branchCell(g *grid) int {
	best, bestSize := -1, gridSize+1
	for pos := range g.cells {
		n := bits.OnesCount16(g.cells[pos])
		if n > 1 && n < bestSize {
			best, bestSize = pos, n
			if n == 2 {
				break
			}
		}
	}
	return best
}

package sudoku

import "sync"

// Board dimensions. The engine is written against these constants but
// assumes classic 9x9 Sudoku throughout.
const (
	boxSize   = 3
	gridSize  = boxSize * boxSize
	cellCount = gridSize * gridSize
	unitCount = 3 * gridSize
	peerCount = 20

	// allCandidates has bits 0..8 set: every value still possible.
	allCandidates = 1<<gridSize - 1
)

// Static geometry tables, shared read-only by all solves after a
// race-free one-time initialization.
var (
	geomOnce sync.Once

	// units lists the 27 constraint groups: rows 0-8, columns 9-17,
	// boxes 18-26. Each holds the 9 cell indices of the group.
	units [unitCount][gridSize]int

	// cellUnits gives, for each cell, the indices into units of the
	// row, column, and box containing it.
	cellUnits [cellCount][3]int

	// peers gives, for each cell, the 20 distinct cells sharing a
	// row, column, or box with it.
	peers [cellCount][peerCount]int
)

func initGeometry() {
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			pos := r*gridSize + c
			box := (r/boxSize)*boxSize + c/boxSize
			units[r][c] = pos
			units[gridSize+c][r] = pos
			boxSlot := (r%boxSize)*boxSize + c%boxSize
			units[2*gridSize+box][boxSlot] = pos
			cellUnits[pos] = [3]int{r, gridSize + c, 2*gridSize + box}
		}
	}

	for pos := 0; pos < cellCount; pos++ {
		var seen [cellCount]bool
		seen[pos] = true
		n := 0
		for _, u := range cellUnits[pos] {
			for _, p := range units[u] {
				if !seen[p] {
					seen[p] = true
					peers[pos][n] = p
					n++
				}
			}
		}
	}
}

// ensureGeometry populates the shared tables exactly once.
func ensureGeometry() {
	geomOnce.Do(initGeometry)
}

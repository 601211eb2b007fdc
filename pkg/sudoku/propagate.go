package sudoku

// Constraint propagation. Two deterministic rules run to a fixed point:
//
//   - naked single: a cell down to one candidate has that value removed
//     from all 20 peers.
//   - hidden single: a value possible in only one cell of a unit is
//     assigned to that cell.
//
// Neither rule guesses. All functions report false on contradiction
// (some domain emptied), at which point the branch is dead and the
// caller must backtrack.

// assign fixes pos to v by eliminating every other candidate there.
// Assigning a value no longer in the domain is a contradiction.
func assign(g *grid, pos int, v uint8) bool {
	if !g.has(pos, v) {
		return false
	}
	for w := uint8(1); w <= gridSize; w++ {
		if w != v && g.has(pos, w) {
			if !eliminate(g, pos, w) {
				return false
			}
		}
	}
	return true
}

// eliminate removes candidate v from pos and chases the consequences
// through both propagation rules until nothing more follows.
func eliminate(g *grid, pos int, v uint8) bool {
	if !g.has(pos, v) {
		return true
	}
	switch g.remove(pos, v) {
	case 0:
		return false
	case 1:
		// Naked single: the survivor leaves every peer's domain.
		w := g.value(pos)
		for _, p := range peers[pos] {
			if !eliminate(g, p, w) {
				return false
			}
		}
	}

	// Hidden single: v must still fit somewhere in each unit of pos.
	for _, u := range cellUnits[pos] {
		spot, n := -1, 0
		for _, p := range units[u] {
			if g.has(p, v) {
				spot = p
				n++
				if n > 1 {
					break
				}
			}
		}
		if n == 0 {
			return false
		}
		if n == 1 && !g.solved(spot) {
			if !assign(g, spot, v) {
				return false
			}
		}
	}
	return true
}

// stabilize sweeps the whole board until neither rule fires. assign and
// eliminate already cascade, so a grid built through them is stable on
// entry and a second run changes nothing; the sweep exists for grids
// assembled directly and as the engine's checkable fixed-point pass.
func stabilize(g *grid) bool {
	for changed := true; changed; {
		changed = false
		before := g.cells

		for pos := 0; pos < cellCount; pos++ {
			if !g.solved(pos) {
				continue
			}
			v := g.value(pos)
			for _, p := range peers[pos] {
				if g.has(p, v) {
					if !eliminate(g, p, v) {
						return false
					}
				}
			}
		}

		for u := 0; u < unitCount; u++ {
			for v := uint8(1); v <= gridSize; v++ {
				spot, n := -1, 0
				for _, p := range units[u] {
					if g.has(p, v) {
						spot = p
						n++
						if n > 1 {
							break
						}
					}
				}
				if n == 0 {
					return false
				}
				if n == 1 && !g.solved(spot) {
					if !assign(g, spot, v) {
						return false
					}
				}
			}
		}

		if g.cells != before {
			changed = true
		}
	}
	return true
}

package sudoku

import "strings"

// Solution is a completed grid: 81 values in row-major order, all 1..9.
type Solution struct {
	cells [cellCount]uint8
}

// String renders the solution in the canonical linear form, the exact
// inverse of Parse for complete grids: 81 characters, all '1'..'9'.
func (s *Solution) String() string {
	var b strings.Builder
	b.Grow(cellCount)
	for _, v := range s.cells {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// GridString renders the solution as 9 lines of 9 digits.
func (s *Solution) GridString() string {
	var b strings.Builder
	b.Grow(cellCount + gridSize)
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			b.WriteByte('0' + s.cells[r*gridSize+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Value returns the solved value at row, col (both 0-based).
func (s *Solution) Value(row, col int) uint8 {
	return s.cells[row*gridSize+col]
}

// Rows returns the solution as a 9x9 matrix.
func (s *Solution) Rows() [gridSize][gridSize]uint8 {
	var rows [gridSize][gridSize]uint8
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			rows[r][c] = s.cells[r*gridSize+c]
		}
	}
	return rows
}

// String renders the puzzle's givens in the canonical linear form,
// '0' for empty cells.
func (p *Puzzle) String() string {
	var b strings.Builder
	b.Grow(cellCount)
	for _, v := range p.givens {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// GridString renders the givens as 9 lines, '_' for empty cells.
func (p *Puzzle) GridString() string {
	var b strings.Builder
	b.Grow(cellCount + gridSize)
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if v := p.givens[r*gridSize+c]; v == 0 {
				b.WriteByte('_')
			} else {
				b.WriteByte('0' + v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

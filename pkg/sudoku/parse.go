package sudoku

import (
	"fmt"
	"strings"
)

// Puzzle holds the givens of a validated puzzle: 81 cells in row-major
// order, 0 for empty. A Puzzle produced by Parse or ParseRows is known
// to be well-formed and free of duplicate givens within any unit;
// whether a completion exists is a question for Solve.
type Puzzle struct {
	givens [cellCount]uint8
}

// Recognized empty-cell markers beyond '0'. Structured forms also
// accept the empty string and a single space.
const emptyMarkers = "_."

// Parse builds a Puzzle from text: either a linear 81-character string
// or a 9-line grid, both row-major. Cells are '1'..'9' for givens and
// '0', '_', or '.' for empty; grid lines may pad cells with spaces.
// Returns ErrFormat for anything that does not decode to 81 cells and
// ErrContradiction when two identical givens share a unit.
func Parse(text string) (*Puzzle, error) {
	if strings.ContainsRune(text, '\n') {
		return parseGridText(text)
	}
	return parseLinear(text)
}

func parseLinear(text string) (*Puzzle, error) {
	if len(text) != cellCount {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrFormat, cellCount, len(text))
	}
	var p Puzzle
	for i := 0; i < cellCount; i++ {
		v, err := decodeCell(text[i])
		if err != nil {
			return nil, fmt.Errorf("%w at cell %d", err, i)
		}
		p.givens[i] = v
	}
	return &p, p.checkGivens()
}

func parseGridText(text string) (*Puzzle, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != gridSize {
		return nil, fmt.Errorf("%w: expected %d grid lines, got %d", ErrFormat, gridSize, len(lines))
	}

	var p Puzzle
	for r, line := range lines {
		// Spaces inside a line are cell separators, not empties.
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != gridSize {
			return nil, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrFormat, r+1, len(line), gridSize)
		}
		for c := 0; c < gridSize; c++ {
			v, err := decodeCell(line[c])
			if err != nil {
				return nil, fmt.Errorf("%w at line %d cell %d", err, r+1, c+1)
			}
			p.givens[r*gridSize+c] = v
		}
	}
	return &p, p.checkGivens()
}

// ParseRows builds a Puzzle from a 9x9 cell matrix. Each cell is a
// string: "1".."9" for a given; "0", "_", ".", " ", or "" for empty.
func ParseRows(rows [][]string) (*Puzzle, error) {
	if len(rows) != gridSize {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrFormat, gridSize, len(rows))
	}
	var p Puzzle
	for r, row := range rows {
		if len(row) != gridSize {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrFormat, r+1, len(row), gridSize)
		}
		for c, cell := range row {
			switch cell {
			case "", " ", "0":
				continue
			}
			if len(cell) != 1 {
				return nil, fmt.Errorf("%w: row %d cell %d: unrecognized cell %q", ErrFormat, r+1, c+1, cell)
			}
			v, err := decodeCell(cell[0])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d cell %d: unrecognized cell %q", ErrFormat, r+1, c+1, cell)
			}
			p.givens[r*gridSize+c] = v
		}
	}
	return &p, p.checkGivens()
}

// decodeCell maps one input byte to a value, 0 meaning empty.
func decodeCell(b byte) (uint8, error) {
	switch {
	case b >= '1' && b <= '9':
		return b - '0', nil
	case b == '0' || strings.IndexByte(emptyMarkers, b) >= 0:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized symbol %q", ErrFormat, b)
	}
}

// checkGivens rejects duplicate givens within any of the 27 units.
// This is a structural violation, reported before any search so that
// callers can tell it apart from a puzzle that merely has no solution.
func (p *Puzzle) checkGivens() error {
	ensureGeometry()
	for u := 0; u < unitCount; u++ {
		var seen uint16
		for _, pos := range units[u] {
			v := p.givens[pos]
			if v == 0 {
				continue
			}
			bit := candidateBit(v)
			if seen&bit != 0 {
				return fmt.Errorf("%w: duplicate %d in %s", ErrContradiction, v, unitName(u))
			}
			seen |= bit
		}
	}
	return nil
}

// unitName renders a unit index for error messages.
func unitName(u int) string {
	switch {
	case u < gridSize:
		return fmt.Sprintf("row %d", u+1)
	case u < 2*gridSize:
		return fmt.Sprintf("column %d", u-gridSize+1)
	default:
		return fmt.Sprintf("box %d", u-2*gridSize+1)
	}
}

// Given returns the given value at row, col (both 0-based), 0 if empty.
func (p *Puzzle) Given(row, col int) uint8 {
	return p.givens[row*gridSize+col]
}

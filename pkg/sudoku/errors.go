package sudoku

import "errors"

// Input rejection errors. Both are detected before any solving work
// begins; an exhausted search is reported by Puzzle.Solve returning
// false, never by an error.
var (
	// ErrFormat means the input does not decode to 81 recognized cells.
	ErrFormat = errors.New("malformed puzzle")

	// ErrContradiction means the givens already violate a row, column,
	// or box constraint, so the puzzle is rejected rather than searched.
	ErrContradiction = errors.New("conflicting givens")
)

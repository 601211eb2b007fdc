// Package sudoku implements a Sudoku constraint-satisfaction engine.
//
// The engine combines deterministic constraint propagation (naked and
// hidden singles, run to a fixed point) with a minimum-remaining-values
// backtracking search. Parse builds a Puzzle from any of the accepted
// external encodings; Puzzle.Solve produces the first completion found,
// or reports that none exists.
//
// A Solve call owns all of its state, so independent goroutines may
// solve concurrently without coordination.
package sudoku

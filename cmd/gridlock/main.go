// Package main provides the gridlock CLI, a Sudoku solving and
// benchmarking tool built on the engine in pkg/sudoku.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/gridlock/pkg/sudoku"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI's exit code contract. Rejected
// input and an exhausted search are distinct outcomes: callers that
// script the CLI rely on telling them apart.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errNoSolution):
		return exitNoSolution
	case errors.Is(err, sudoku.ErrFormat), errors.Is(err, sudoku.ErrContradiction):
		return exitUserError
	default:
		return exitSysError
	}
}

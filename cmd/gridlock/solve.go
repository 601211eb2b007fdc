// Solve command: solve a single puzzle.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridlock/pkg/sudoku"
)

var (
	solveFile  string
	solveGrid  bool
	solveStats bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve one Sudoku puzzle",
	Long: `Solve reads a puzzle and prints its completion.

The puzzle may be passed as an argument (linear 81-character form,
'0'/'_'/'.' for empty cells), read from a file with --file, or piped
on stdin (linear or 9-line grid form).

Exit codes: 0 solved, 1 invalid puzzle, 3 no solution exists.

Example:
  gridlock solve 530070000600195000098000060800060003400803001700020006060000280000419005000080079
  gridlock solve --file puzzle.txt --grid
  cat puzzle.txt | gridlock solve --stats`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFile, "file", "", "read the puzzle from a file")
	solveCmd.Flags().BoolVar(&solveGrid, "grid", false, "print the solution as a 9-line grid")
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "print search statistics to stderr")
}

func runSolve(cmd *cobra.Command, args []string) error {
	text, err := solveInput(cmd, args)
	if err != nil {
		return err
	}

	puzzle, err := sudoku.Parse(text)
	if err != nil {
		return err
	}

	sol, stats, ok := puzzle.Solve()
	if solveStats {
		fmt.Fprintf(cmd.ErrOrStderr(), "guesses=%d backtracks=%d duration=%s\n",
			stats.Guesses, stats.Backtracks, stats.Duration)
	}
	if !ok {
		return errNoSolution
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"solution":   sol.String(),
			"guesses":    stats.Guesses,
			"backtracks": stats.Backtracks,
			"durationUs": stats.Duration.Microseconds(),
		})
	}
	if solveGrid {
		fmt.Fprint(cmd.OutOrStdout(), sol.GridString())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), sol)
	}
	return nil
}

// solveInput fetches the puzzle text: argument > --file > stdin.
func solveInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if solveFile != "" {
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return "", fmt.Errorf("read puzzle file: %w", err)
		}
		return trimPuzzleText(string(data)), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return trimPuzzleText(string(data)), nil
}

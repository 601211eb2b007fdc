// Bench command: solve a whole corpus and record the run.
package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridlock/internal/corpus"
	"github.com/mesh-intelligence/gridlock/internal/store"
	"github.com/mesh-intelligence/gridlock/pkg/sudoku"
)

var benchQuiet bool

var benchCmd = &cobra.Command{
	Use:   "bench <corpus-file>",
	Short: "Solve every puzzle in a corpus and record the run",
	Long: `Bench solves each puzzle in the corpus file, records per-puzzle
statistics (guesses, backtracks, duration) in the benchmark database
under the data directory, and prints a summary.

The corpus file holds one linear 81-character puzzle per line, or
9-line grid blocks separated by blank lines; '#' starts a comment.

Example:
  gridlock bench top95.txt
  gridlock bench --data-dir ./results hardest.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().BoolVar(&benchQuiet, "quiet", false, "suppress per-puzzle warnings")
}

func runBench(cmd *cobra.Command, args []string) error {
	puzzles, err := corpus.Load(args[0])
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		return fmt.Errorf("corpus %s holds no puzzles", args[0])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.BeginRun(filepath.Base(args[0]))
	if err != nil {
		return err
	}

	var totalBacktracks int
	started := time.Now()
	for seq, text := range puzzles {
		run.Puzzles++

		puzzle, err := sudoku.Parse(text)
		if err != nil {
			run.Rejected++
			if !benchQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "puzzle %d rejected: %v\n", seq+1, err)
			}
			continue
		}

		_, stats, ok := puzzle.Solve()
		result := store.Result{
			RunID:      run.RunID,
			Seq:        seq,
			Puzzle:     puzzle.String(),
			Solved:     ok,
			Guesses:    stats.Guesses,
			Backtracks: stats.Backtracks,
			Duration:   stats.Duration,
		}
		if err := st.AddResult(result); err != nil {
			return err
		}

		totalBacktracks += stats.Backtracks
		if ok {
			run.Solved++
		} else {
			run.Unsolved++
			if !benchQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "puzzle %d has no solution\n", seq+1)
			}
		}
	}
	elapsed := time.Since(started)

	if err := st.FinishRun(run); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"runId":      run.RunID,
			"corpus":     run.Corpus,
			"puzzles":    run.Puzzles,
			"solved":     run.Solved,
			"unsolved":   run.Unsolved,
			"rejected":   run.Rejected,
			"backtracks": totalBacktracks,
			"elapsedMs":  elapsed.Milliseconds(),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", run.RunID)
	fmt.Fprintf(cmd.OutOrStdout(), "corpus %s: %d puzzles, %d solved, %d unsolved, %d rejected\n",
		run.Corpus, run.Puzzles, run.Solved, run.Unsolved, run.Rejected)
	fmt.Fprintf(cmd.OutOrStdout(), "total backtracks %d, elapsed %s\n", totalBacktracks, elapsed.Round(time.Millisecond))

	if run.Solved == 0 && run.Unsolved == 0 {
		return errors.New("no well-formed puzzles in corpus")
	}
	return nil
}

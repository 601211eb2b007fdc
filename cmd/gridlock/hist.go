// Hist command: backtrack-count histogram for a recorded run.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridlock/internal/store"
)

// histBarWidth is the width of the widest histogram bar.
const histBarWidth = 50

var histCmd = &cobra.Command{
	Use:   "hist [run-id]",
	Short: "Print the backtrack histogram for a run",
	Long: `Hist buckets a run's per-puzzle backtrack counts by decade and
prints the distribution. With no argument the most recent run is used.

Example:
  gridlock hist
  gridlock hist 018f3c2e-4e2a-7cc0-b827-6f1e2a9d4c11`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHist,
}

func runHist(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var run *store.Run
	if len(args) == 1 {
		run, err = st.Run(args[0])
	} else {
		run, err = st.LatestRun()
	}
	if err != nil {
		return err
	}

	buckets, err := st.Histogram(run.RunID)
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]map[string]any, len(buckets))
		for i, b := range buckets {
			out[i] = map[string]any{"bucket": b.Label, "count": b.Count}
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"runId":   run.RunID,
			"corpus":  run.Corpus,
			"buckets": out,
		})
	}

	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "backtracks for run %s (%s, %d puzzles)\n",
		run.RunID, run.Corpus, run.Puzzles)
	for _, b := range buckets {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("#", b.Count*histBarWidth/max)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%10s %6d %s\n", b.Label, b.Count, bar)
	}
	return nil
}

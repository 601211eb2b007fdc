// Runs command: list recorded benchmark runs.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded benchmark runs",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.Runs()
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]map[string]any, len(runs))
		for i, r := range runs {
			out[i] = map[string]any{
				"runId":    r.RunID,
				"corpus":   r.Corpus,
				"started":  r.StartedAt.Format(time.RFC3339),
				"puzzles":  r.Puzzles,
				"solved":   r.Solved,
				"unsolved": r.Unsolved,
				"rejected": r.Rejected,
			}
		}
		return printJSON(cmd.OutOrStdout(), out)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d puzzles (%d solved, %d unsolved, %d rejected)\n",
			r.RunID, r.StartedAt.Format(time.RFC3339), r.Corpus,
			r.Puzzles, r.Solved, r.Unsolved, r.Rejected)
	}
	return nil
}

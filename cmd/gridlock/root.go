// Root command for the gridlock CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridlock/internal/paths"
	"github.com/mesh-intelligence/gridlock/pkg/sudoku"
)

// Exit codes. Input rejection (bad format or conflicting givens) is a
// user error; a well-formed puzzle with no completion gets its own
// code so scripts can distinguish the two.
const (
	exitSuccess    = 0
	exitUserError  = 1
	exitSysError   = 2
	exitNoSolution = 3
)

// errNoSolution marks the search-exhausted outcome on the way to main.
var errNoSolution = errors.New("no solution")

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "gridlock",
	Short:   "Gridlock is a Sudoku solver and benchmark harness",
	Version: sudoku.Version,
	Long: `Gridlock solves Sudoku puzzles with constraint propagation and
backtracking search, and benchmarks the solver over puzzle corpora,
recording per-puzzle branching statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.gridlock-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(histCmd)
	rootCmd.AddCommand(runsCmd)
}

// resolveDataDir returns the data directory path following the
// precedence chain: --data-dir flag > config.yaml data_dir >
// GRIDLOCK_DATA_DIR env > default $(CWD)/.gridlock-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > GRIDLOCK_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

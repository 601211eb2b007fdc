// Shared helpers for gridlock CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/gridlock/internal/store"
)

// openStore resolves the data directory and opens the benchmark
// database. The caller must close the returned store.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// trimPuzzleText strips surrounding whitespace from piped or file
// input while keeping interior newlines for the grid form.
func trimPuzzleText(s string) string {
	return strings.TrimSpace(s)
}

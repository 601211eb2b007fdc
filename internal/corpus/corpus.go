// Package corpus reads benchmark puzzle files.
//
// Two layouts are accepted, matching the solver's input formats:
// one 81-character linear puzzle per line, or 9-line grid blocks
// separated by blank lines. Lines starting with '#' are comments.
// Entries are returned as raw text; symbol validation belongs to the
// sudoku parser.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads every puzzle from the file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	puzzles, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return puzzles, nil
}

// Read reads every puzzle from r. Grid blocks are joined into the
// canonical linear form before being returned.
func Read(r io.Reader) ([]string, error) {
	var puzzles []string
	var block []string
	lineNo := 0

	flushBlock := func() error {
		if len(block) == 0 {
			return nil
		}
		if len(block) != 9 {
			return fmt.Errorf("line %d: grid block has %d lines, expected 9", lineNo, len(block))
		}
		puzzles = append(puzzles, strings.Join(block, ""))
		block = block[:0]
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			if err := flushBlock(); err != nil {
				return nil, err
			}
		case len(line) == 81:
			if len(block) > 0 {
				return nil, fmt.Errorf("line %d: linear puzzle inside a grid block", lineNo)
			}
			puzzles = append(puzzles, line)
		case len(line) == 9:
			block = append(block, line)
			if len(block) == 9 {
				if err := flushBlock(); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("line %d: unrecognized line length %d", lineNo, len(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if err := flushBlock(); err != nil {
		return nil, err
	}
	return puzzles, nil
}

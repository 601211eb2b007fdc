package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	hardPuzzle = "200500080001020000000000000070008000003000020000070600600200001040000700000300000"

	// easyPuzzle with a second 1 in row 1: structurally invalid.
	duplicatePuzzle = "110070000600195000098000060800060003400803001700020006060000280000419005000080079"
)

const easyGridText = `53__7____
6__195___
_98____6_
8___6___3
4__8_3__1
7___2___6
_6____28_
___419__5
____8__79`

func TestParseLinear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "digits only", input: easyPuzzle},
		{name: "dots for empty", input: strings.ReplaceAll(easyPuzzle, "0", ".")},
		{name: "underscores for empty", input: strings.ReplaceAll(easyPuzzle, "0", "_")},
		{name: "fully empty grid", input: strings.Repeat("0", 81)},
		{name: "too short", input: "53007", wantErr: ErrFormat},
		{name: "too long", input: easyPuzzle + strings.Repeat("0", 19), wantErr: ErrFormat},
		{name: "letter in input", input: "x" + easyPuzzle[1:], wantErr: ErrFormat},
		{name: "duplicate given in a row", input: duplicatePuzzle, wantErr: ErrContradiction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.Map(normalizeEmpty, tt.input), p.String())
		})
	}
}

// normalizeEmpty folds the alternate empty markers to '0' for
// comparing parser input against formatter output.
func normalizeEmpty(r rune) rune {
	if r == '.' || r == '_' {
		return '0'
	}
	return r
}

func TestParseGridText(t *testing.T) {
	t.Run("nine-line grid matches linear form", func(t *testing.T) {
		p, err := Parse(easyGridText)
		require.NoError(t, err)
		assert.Equal(t, easyPuzzle, p.String())
	})

	t.Run("spaced cells are accepted", func(t *testing.T) {
		spaced := "5 3 _ _ 7 _ _ _ _\n" + strings.Join(strings.Split(easyGridText, "\n")[1:], "\n")
		p, err := Parse(spaced)
		require.NoError(t, err)
		assert.Equal(t, easyPuzzle, p.String())
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		p, err := Parse("\n" + strings.ReplaceAll(easyGridText, "\n", "\n\n"))
		require.NoError(t, err)
		assert.Equal(t, easyPuzzle, p.String())
	})

	t.Run("wrong line count is rejected", func(t *testing.T) {
		_, err := Parse("53__7____\n6__195___\n")
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("short line is rejected", func(t *testing.T) {
		bad := strings.Replace(easyGridText, "53__7____", "53__7", 1)
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestParseRows(t *testing.T) {
	rowsFor := func(s string) [][]string {
		rows := make([][]string, 9)
		for r := 0; r < 9; r++ {
			rows[r] = strings.Split(s[r*9:(r+1)*9], "")
		}
		return rows
	}

	t.Run("nine by nine matrix", func(t *testing.T) {
		p, err := ParseRows(rowsFor(easyPuzzle))
		require.NoError(t, err)
		assert.Equal(t, easyPuzzle, p.String())
	})

	t.Run("empty string and space mark empty cells", func(t *testing.T) {
		rows := rowsFor(easyPuzzle)
		rows[0][2] = ""
		rows[0][3] = " "
		p, err := ParseRows(rows)
		require.NoError(t, err)
		assert.Equal(t, easyPuzzle, p.String())
	})

	t.Run("wrong row count", func(t *testing.T) {
		_, err := ParseRows(rowsFor(easyPuzzle)[:8])
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("wrong column count", func(t *testing.T) {
		rows := rowsFor(easyPuzzle)
		rows[4] = rows[4][:8]
		_, err := ParseRows(rows)
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("multi-character cell", func(t *testing.T) {
		rows := rowsFor(easyPuzzle)
		rows[2][2] = "12"
		_, err := ParseRows(rows)
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestCheckGivens(t *testing.T) {
	tests := []struct {
		name  string
		wreck func(p *Puzzle)
		unit  string
	}{
		{
			name:  "duplicate in a column",
			wreck: func(p *Puzzle) { p.givens[0], p.givens[72] = 4, 4 },
			unit:  "column 1",
		},
		{
			name:  "duplicate in a box",
			wreck: func(p *Puzzle) { p.givens[0], p.givens[20] = 4, 4 },
			unit:  "box 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Puzzle
			tt.wreck(&p)
			err := p.checkGivens()
			require.ErrorIs(t, err, ErrContradiction)
			assert.Contains(t, err.Error(), tt.unit)
		})
	}
}

func TestPuzzleGridString(t *testing.T) {
	p, err := Parse(easyPuzzle)
	require.NoError(t, err)
	assert.Equal(t, easyGridText+"\n", p.GridString())

	// GridString output parses back to the same puzzle.
	back, err := Parse(p.GridString())
	require.NoError(t, err)
	assert.Equal(t, p.String(), back.String())
}

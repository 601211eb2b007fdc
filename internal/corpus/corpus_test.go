package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	linearA = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	linearB = "200500080001020000000000000070008000003000020000070600600200001040000700000300000"
)

var gridBlock = strings.TrimSpace(`
53__7____
6__195___
_98____6_
8___6___3
4__8_3__1
7___2___6
_6____28_
___419__5
____8__79
`)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{
			name:  "linear lines",
			input: linearA + "\n" + linearB + "\n",
			want:  []string{linearA, linearB},
		},
		{
			name:  "comments and blank lines skipped",
			input: "# top corpus\n\n" + linearA + "\n\n# trailer\n",
			want:  []string{linearA},
		},
		{
			name:  "grid block",
			input: gridBlock + "\n",
			want:  []string{strings.ReplaceAll(gridBlock, "\n", "")},
		},
		{
			name:  "grid blocks separated by blank lines",
			input: gridBlock + "\n\n" + gridBlock + "\n",
			want: []string{
				strings.ReplaceAll(gridBlock, "\n", ""),
				strings.ReplaceAll(gridBlock, "\n", ""),
			},
		},
		{
			name:  "mixed linear and grid entries",
			input: linearA + "\n" + gridBlock + "\n" + linearB + "\n",
			want: []string{
				linearA,
				strings.ReplaceAll(gridBlock, "\n", ""),
				linearB,
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  " + linearA + "  \n",
			want:  []string{linearA},
		},
		{
			name:    "short grid block",
			input:   "53__7____\n6__195___\n\n",
			wantErr: "grid block has 2 lines",
		},
		{
			name:    "linear puzzle interrupting a grid block",
			input:   "53__7____\n" + linearA + "\n",
			wantErr: "inside a grid block",
		},
		{
			name:    "junk line",
			input:   "53__7\n",
			wantErr: "unrecognized line length 5",
		},
		{
			name:    "truncated block at EOF",
			input:   "53__7____\n",
			wantErr: "grid block has 1 lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads puzzles from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.txt")
		require.NoError(t, os.WriteFile(path, []byte(linearA+"\n"+linearB+"\n"), 0o644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{linearA, linearB}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})

	t.Run("error includes file name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.txt")
		require.NoError(t, os.WriteFile(path, []byte("xyz\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.txt")
	})
}

package cmd

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/matrixmarket"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func distinct(m *boolmat.Matrix, key func(c boolmat.Coord) int) int {
	seen := make(map[int]bool)
	for _, c := range m.Coords() {
		seen[key(c)] = true
	}
	return len(seen)
}

func TestGenerateShapes(t *testing.T) {
	row := func(c boolmat.Coord) int { return c.Row }
	col := func(c boolmat.Coord) int { return c.Col }

	tests := []struct {
		cmd   *cobra.Command
		args  []string
		short string
		check func(t *testing.T, m *boolmat.Matrix)
	}{
		{generateOneRowCmd, []string{"onerow", "--size", "6"}, "size x size", func(t *testing.T, m *boolmat.Matrix) {
			require.Equal(t, 6, m.Rows())
			require.Equal(t, 6, m.Cols())
			require.Equal(t, 6, m.NonZeros())
			require.Equal(t, 1, distinct(m, row))
			require.True(t, m.Has(0, 5))
		}},
		{generateOneColCmd, []string{"onecol", "--size", "6"}, "size x size", func(t *testing.T, m *boolmat.Matrix) {
			require.Equal(t, 6, m.Rows())
			require.Equal(t, 6, m.Cols())
			require.Equal(t, 6, m.NonZeros())
			require.Equal(t, 1, distinct(m, col))
			require.True(t, m.Has(5, 0))
		}},
		{generateMultipleColsCmd, []string{"cols", "--rows", "10", "--cols", "4", "--axis", "0.8"}, "long rows", func(t *testing.T, m *boolmat.Matrix) {
			require.Equal(t, 10, m.Rows())
			require.Equal(t, 4, m.Cols())
			require.Equal(t, 2, distinct(m, row))
			require.Equal(t, 8, m.NonZeros())
		}},
		{generateMultipleRowsCmd, []string{"rows", "--rows", "10", "--cols", "4", "--axis", "0.5"}, "long columns", func(t *testing.T, m *boolmat.Matrix) {
			require.Equal(t, 10, m.Rows())
			require.Equal(t, 4, m.Cols())
			require.Equal(t, 2, distinct(m, col))
			require.Equal(t, 20, m.NonZeros())
		}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.True(t, strings.Contains(test.cmd.Short, test.short), "help %q", test.cmd.Short)

			path := filepath.Join(t.TempDir(), "m.mtx")
			args := append([]string{"generate"}, test.args...)
			rootCmd.SetArgs(append(args, "--sparsity", "0", "--seed", "3", path))
			require.NoError(t, rootCmd.Execute())

			m, err := matrixmarket.ReadFile(path)
			require.NoError(t, err)
			test.check(t, m)
		})
	}
}

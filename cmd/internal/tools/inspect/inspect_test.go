package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/matrixmarket"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		m         *boolmat.Matrix
		symmetric bool
	}{
		{boolmat.FromSorted(2, 2, []boolmat.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}), true},
		{boolmat.FromSorted(2, 2, []boolmat.Coord{{Row: 0, Col: 1}}), false},
		{boolmat.FromSorted(2, 3, []boolmat.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}), true},
		{boolmat.FromSorted(2, 3, []boolmat.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}}), false},
		{boolmat.Empty(3, 3), true},
	}
	for i, test := range tests {
		path := filepath.Join(dir, string(rune('a'+i))+".mtx")
		require.NoError(t, matrixmarket.WriteFile(path, test.m))

		r, err := Inspect(path)
		require.NoError(t, err)
		require.Equal(t, test.symmetric, r.Symmetric, "case %v", i)
		require.Equal(t, test.m.NonZeros(), r.NonZeros)
		require.Equal(t, test.m.Fingerprint(), r.Fingerprint)
		require.InDelta(t, test.m.Density(), r.Density, 1e-12)
	}
}

func TestInspectBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mtx")
	require.NoError(t, os.WriteFile(path, []byte("not a matrix\n"), 0644))
	_, err := Inspect(path)
	require.Error(t, err)

	_, err = Inspect(filepath.Join(t.TempDir(), "missing.mtx"))
	require.Error(t, err)
}

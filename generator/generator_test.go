package generator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		spec  Spec
		valid bool
	}{
		{Spec{Rows: 1, Cols: 1}, true},
		{Spec{Rows: 5, Cols: 3, MaxNonZeros: 4, NonZeroSparsity: 1, RowSparsity: 1, ColSparsity: 1, DiagSparsity: 1}, true},
		{Spec{Rows: 0, Cols: 1}, false},
		{Spec{Rows: 1, Cols: -1}, false},
		{Spec{Rows: 1, Cols: 1, MaxNonZeros: -1}, false},
		{Spec{Rows: 1, Cols: 1, NonZeroSparsity: -0.1}, false},
		{Spec{Rows: 1, Cols: 1, RowSparsity: 1.1}, false},
		{Spec{Rows: 1, Cols: 1, ColSparsity: math.NaN()}, false},
		{Spec{Rows: 1, Cols: 1, DiagSparsity: 2}, false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := test.spec.Validate()
			if test.valid && err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if !test.valid && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec but found %v", err)
			}
		})
	}
}

func TestMatrixInvalidSpec(t *testing.T) {
	_, err := New(0).Matrix(Spec{Rows: 3, Cols: 0, MaxNonZeros: 3})
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestMatrixDense(t *testing.T) {
	spec := Spec{Rows: 5, Cols: 5, MaxNonZeros: 25}
	for seed := uint64(0); seed < 10; seed++ {
		t.Run(strconv.Itoa(int(seed)), func(t *testing.T) {
			m, err := New(seed).Matrix(spec)
			require.NoError(t, err)
			require.Equal(t, 25, m.NonZeros())
			for r := 0; r < 5; r++ {
				for c := 0; c < 5; c++ {
					require.True(t, m.Has(r, c), "(%v,%v) missing", r, c)
				}
			}
		})
	}
}

func TestMatrixZeroMaxNonZeros(t *testing.T) {
	specs := []Spec{
		{Rows: 5, Cols: 5},
		{Rows: 7, Cols: 3, Symmetric: true},
		{Rows: 10, Cols: 10, RowSparsity: 0.5, ColSparsity: 0.5, DiagSparsity: 0.5, NonZeroSparsity: 0.5},
	}
	for i, spec := range specs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m, err := New(uint64(i)).Matrix(spec)
			require.NoError(t, err)
			require.Equal(t, 0, m.NonZeros())
			rows, cols := m.Dims()
			require.Equal(t, spec.Rows, rows)
			require.Equal(t, spec.Cols, cols)
		})
	}
}

func TestMatrixDeterministic(t *testing.T) {
	spec := Spec{Rows: 30, Cols: 20, MaxNonZeros: 100, NonZeroSparsity: 0.5, RowSparsity: 0.3, ColSparsity: 0.3, DiagSparsity: 0.2}
	a, err := New(42).Matrix(spec)
	require.NoError(t, err)
	b, err := New(42).Matrix(spec)
	require.NoError(t, err)
	require.True(t, a.Equals(b), "expected %v but found %v", a, b)
}

func randomSpec(rng *rand.Rand) Spec {
	rows := 1 + rng.Intn(25)
	cols := 1 + rng.Intn(25)
	return Spec{
		Rows:            rows,
		Cols:            cols,
		MaxNonZeros:     rng.Intn(rows*cols + 1),
		NonZeroSparsity: rng.Float64(),
		RowSparsity:     rng.Float64(),
		ColSparsity:     rng.Float64(),
		DiagSparsity:    rng.Float64(),
		Symmetric:       rng.Intn(2) == 0,
	}
}

func TestMatrixProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := New(8)
	for i := 0; i < 300; i++ {
		spec := randomSpec(rng)
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m, err := g.Matrix(spec)
			require.NoError(t, err)

			rows, cols := m.Dims()
			require.Equal(t, spec.Rows, rows)
			require.Equal(t, spec.Cols, cols)
			require.LessOrEqual(t, m.NonZeros(), spec.MaxNonZeros)

			coords := m.Coords()
			assertRowMajor(t, coords)
			for _, c := range coords {
				require.True(t, 0 <= c.Row && c.Row < rows && 0 <= c.Col && c.Col < cols, "%v out of bounds for %v", c, spec)
			}
			if spec.Symmetric {
				require.True(t, m.IsSymmetric(), "expected symmetric matrix for %v but found %v", spec, m)
			}
		})
	}
}

func TestRelaxTermination(t *testing.T) {
	spec := Spec{Rows: 4, Cols: 6, MaxNonZeros: 10, NonZeroSparsity: 1, RowSparsity: 1, ColSparsity: 1, DiagSparsity: 1}

	seen := make([]Spec, 0)
	m, relaxations := New(0).relax(spec, func(s Spec) []boolmat.Coord {
		seen = append(seen, s)
		return nil
	})

	require.Equal(t, MaxRelaxationDepth+1, relaxations)
	require.Len(t, seen, MaxRelaxationDepth+2)
	require.True(t, m.IsZero())
	rows, cols := m.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 6, cols)

	for i, s := range seen {
		expected := math.Pow(RelaxationDecay, float64(i))
		require.InDelta(t, expected, s.RowSparsity, 1e-12)
		require.InDelta(t, expected, s.ColSparsity, 1e-12)
		require.InDelta(t, expected, s.DiagSparsity, 1e-12)
		require.InDelta(t, expected, s.NonZeroSparsity, 1e-12)
		require.Equal(t, spec.MaxNonZeros, s.MaxNonZeros)
	}
}

func TestRelaxRecovers(t *testing.T) {
	spec := Spec{Rows: 3, Cols: 3, MaxNonZeros: 9}

	calls := 0
	m, relaxations := New(0).relax(spec, func(s Spec) []boolmat.Coord {
		calls++
		if calls < 4 {
			return nil
		}
		return coordsOf(2, 2, 0, 1)
	})

	require.Equal(t, 3, relaxations)
	require.Equal(t, []boolmat.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 2}}, m.Coords())
}

func TestMatrixRelaxesTightSpec(t *testing.T) {
	// every diagonal but one excluded and a single row and column kept
	spec := Spec{Rows: 6, Cols: 6, MaxNonZeros: 36, RowSparsity: 1, ColSparsity: 1, DiagSparsity: 1}
	for seed := uint64(0); seed < 20; seed++ {
		m, err := New(seed).Matrix(spec)
		require.NoError(t, err)
		require.LessOrEqual(t, m.NonZeros(), 36)
		assertRowMajor(t, m.Coords())
	}
}

func TestOneRow(t *testing.T) {
	tests := []struct {
		size, maxNNZ int
		nnzSparsity  float64
		expected     int
	}{
		{10, 10, 0, 10},
		{10, 4, 0, 4},
		{10, 10, 1, 0},
		{1, 1, 0, 1},
		{10, 0, 0, 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m, err := New(uint64(i)).OneRow(test.size, test.maxNNZ, test.nnzSparsity)
			require.NoError(t, err)
			require.Equal(t, test.expected, m.NonZeros())
			require.Equal(t, test.size, m.Rows())
			require.Equal(t, test.size, m.Cols())
			assertRowMajor(t, m.Coords())
			m.Each(func(row, col int) {
				require.Equal(t, 0, row)
			})
		})
	}
}

func TestOneRowDensity(t *testing.T) {
	m, err := New(9).OneRow(10000, 10000, 0.7)
	require.NoError(t, err)
	// expected 3000 entries, std about 46
	require.InDelta(t, 3000, m.NonZeros(), 300)
}

func TestOneColVariants(t *testing.T) {
	tests := []struct {
		variant     ColumnVariant
		nnzSparsity float64
		expected    int
	}{
		{ColumnDensity, 0, 12},
		{ColumnDensity, 1, 0},
		{ColumnInverted, 0, 0},
		{ColumnInverted, 1, 12},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m, err := New(uint64(i)).OneCol(12, 12, test.nnzSparsity, test.variant)
			require.NoError(t, err)
			require.Equal(t, test.expected, m.NonZeros())
			m.Each(func(row, col int) {
				require.Equal(t, 0, col)
			})
		})
	}
}

func TestOneColMatchesOneRowTranspose(t *testing.T) {
	row, err := New(11).OneRow(50, 50, 0.4)
	require.NoError(t, err)
	col, err := New(11).OneCol(50, 50, 0.4, ColumnDensity)
	require.NoError(t, err)
	require.True(t, row.T().Equals(col), "expected %v but found %v", row.T(), col)
}

func TestOneColUnknownVariant(t *testing.T) {
	_, err := New(0).OneCol(3, 3, 0, ColumnVariant(7))
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseColumnVariant(t *testing.T) {
	for _, v := range []ColumnVariant{ColumnDensity, ColumnInverted} {
		parsed, err := ParseColumnVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
	_, err := ParseColumnVariant("diagonal")
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestMultipleCols(t *testing.T) {
	m, err := New(12).MultipleCols(10, 8, 80, 0, 0.5)
	require.NoError(t, err)

	rows := map[int]int{}
	m.Each(func(row, col int) {
		rows[row]++
	})
	require.Len(t, rows, 5)
	for row, count := range rows {
		require.Equal(t, 8, count, "row %v", row)
	}
	require.Equal(t, 40, m.NonZeros())
}

func TestMultipleRows(t *testing.T) {
	m, err := New(13).MultipleRows(8, 10, 80, 0, 0.5)
	require.NoError(t, err)

	cols := map[int]int{}
	m.Each(func(row, col int) {
		cols[col]++
	})
	require.Len(t, cols, 5)
	for col, count := range cols {
		require.Equal(t, 8, count, "col %v", col)
	}
	assertRowMajor(t, m.Coords())
}

func TestMultipleTruncates(t *testing.T) {
	g := New(14)
	a, err := g.MultipleCols(20, 20, 15, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 15, a.NonZeros())
	assertRowMajor(t, a.Coords())

	b, err := g.MultipleRows(20, 20, 15, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 15, b.NonZeros())
	assertRowMajor(t, b.Coords())
}

func TestSpecializedInvalid(t *testing.T) {
	g := New(0)
	tests := []func() error{
		func() error { _, err := g.OneRow(0, 1, 0); return err },
		func() error { _, err := g.OneRow(1, -1, 0); return err },
		func() error { _, err := g.OneCol(1, 1, 1.5, ColumnDensity); return err },
		func() error { _, err := g.MultipleCols(0, 1, 1, 0, 0); return err },
		func() error { _, err := g.MultipleCols(1, 1, 1, 0, -1); return err },
		func() error { _, err := g.MultipleRows(1, 0, 1, 0, 0); return err },
		func() error { _, err := g.MultipleRows(1, 1, 1, 2, 0); return err },
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.ErrorIs(t, test(), ErrInvalidSpec)
		})
	}
}

func ExampleGenerator_Matrix() {
	g := New(1)
	m, _ := g.Matrix(Spec{Rows: 5, Cols: 5, MaxNonZeros: 25})
	fmt.Println(m.NonZeros(), m.Density())

	m, _ = g.Matrix(Spec{Rows: 5, Cols: 5, MaxNonZeros: 0})
	fmt.Println(m)
	//Output:
	//25 1
	//(5 x 5, nnz:0){}
}

func BenchmarkMatrix(b *testing.B) {
	g := New(0)
	spec := Spec{Rows: 200, Cols: 200, MaxNonZeros: 4000, NonZeroSparsity: 0.9, RowSparsity: 0.2, ColSparsity: 0.2, DiagSparsity: 0.3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Matrix(spec)
	}
}

package entry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/generator"
	"github.com/nathanhack/matgen/matrixmarket"
	"github.com/stretchr/testify/require"
)

func fixed(rows, cols int, coords ...boolmat.Coord) MatrixFunc {
	return func() (*boolmat.Matrix, error) {
		return boolmat.New(rows, cols, coords)
	}
}

func TestGenerate(t *testing.T) {
	e, err := Generate(
		fixed(2, 2, boolmat.Coord{Row: 0, Col: 0}, boolmat.Coord{Row: 1, Col: 1}),
		fixed(2, 2, boolmat.Coord{Row: 0, Col: 1}, boolmat.Coord{Row: 1, Col: 0}),
	)
	require.NoError(t, err)
	require.Equal(t, []boolmat.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, e.Product.Coords())
	require.InDelta(t, 0.5, e.M1Density, 1e-12)
	require.InDelta(t, 0.5, e.M2Density, 1e-12)
	require.InDelta(t, 0.5, e.ProductDensity, 1e-12)
}

func TestGenerateRectangular(t *testing.T) {
	e, err := Generate(
		fixed(3, 2, boolmat.Coord{Row: 0, Col: 1}, boolmat.Coord{Row: 2, Col: 0}),
		fixed(2, 4, boolmat.Coord{Row: 1, Col: 3}),
	)
	require.NoError(t, err)
	require.Equal(t, 3, e.Product.Rows())
	require.Equal(t, 4, e.Product.Cols())
	require.Equal(t, []boolmat.Coord{{Row: 0, Col: 3}}, e.Product.Coords())
	require.InDelta(t, 1.0/12, e.ProductDensity, 1e-12)
}

func TestGenerateErrors(t *testing.T) {
	failure := errors.New("boom")
	tests := []struct {
		m1, m2   MatrixFunc
		expected error
	}{
		{fixed(2, 3), fixed(2, 3), boolmat.ErrDimensionMismatch},
		{func() (*boolmat.Matrix, error) { return nil, failure }, fixed(2, 2), failure},
		{fixed(2, 2), func() (*boolmat.Matrix, error) { return nil, failure }, failure},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := Generate(test.m1, test.m2)
			require.ErrorIs(t, err, test.expected)
		})
	}
}

func TestModes(t *testing.T) {
	f := Fractions{NonZero: 0.5, Row: 0.2, Col: 0.2, Diag: 0.1}
	tests := []struct {
		mode                   Mode
		m1Rows, inner, m2Cols  int
		maxM1, maxM2, maxTotal int
	}{
		{Rectangle(8, 5, 3, 10, f, f), 8, 5, 3, 10, 10, 24},
		{Square(6, 20, f, Fractions{Symmetric: true}), 6, 6, 6, 20, 20, 36},
		{HorizontalVertical(7, 49, 0.3, 0.3, generator.ColumnDensity), 7, 7, 7, 7, 7, 49},
		{InnerProduct(9, 0.1, 0.1, generator.ColumnDensity), 9, 9, 9, 9, 9, 1},
		{OuterProduct(9, 0.1, 0.1, generator.ColumnDensity), 9, 9, 9, 9, 9, 81},
		{ExtremeCases(10, 30, 0.1, 0.8, 0.1, 0.8), 10, 10, 10, 30, 30, 100},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for seed := uint64(0); seed < 10; seed++ {
				e, err := Run(generator.New(seed), test.mode)
				require.NoError(t, err)
				require.Equal(t, test.m1Rows, e.M1.Rows())
				require.Equal(t, test.inner, e.M1.Cols())
				require.Equal(t, test.inner, e.M2.Rows())
				require.Equal(t, test.m2Cols, e.M2.Cols())
				require.LessOrEqual(t, e.M1.NonZeros(), test.maxM1)
				require.LessOrEqual(t, e.M2.NonZeros(), test.maxM2)
				require.LessOrEqual(t, e.Product.NonZeros(), test.maxTotal)
				require.True(t, boolmat.Mul(e.M1, e.M2).Equals(e.Product))
			}
		})
	}
}

func TestHorizontalVerticalShape(t *testing.T) {
	e, err := Run(generator.New(3), HorizontalVertical(12, 144, 0, 0, generator.ColumnDensity))
	require.NoError(t, err)

	cols := map[int]bool{}
	e.M1.Each(func(row, col int) {
		cols[col] = true
	})
	require.Len(t, cols, 1)
	e.M2.Each(func(row, col int) {
		require.Equal(t, 0, col)
	})
}

func TestInnerProductShape(t *testing.T) {
	e, err := Run(generator.New(4), InnerProduct(20, 0, 0, generator.ColumnDensity))
	require.NoError(t, err)
	require.Equal(t, 20, e.M1.NonZeros())
	require.Equal(t, 20, e.M2.NonZeros())
	require.Equal(t, []boolmat.Coord{{Row: 0, Col: 0}}, e.Product.Coords())
}

func TestOuterProductShape(t *testing.T) {
	e, err := Run(generator.New(5), OuterProduct(20, 0, 0, generator.ColumnDensity))
	require.NoError(t, err)
	require.Equal(t, 400, e.Product.NonZeros())
	require.InDelta(t, 1.0, e.ProductDensity, 1e-12)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	e, err := Run(generator.New(6), Square(10, 50, Fractions{NonZero: 0.5}, Fractions{NonZero: 0.5}))
	require.NoError(t, err)

	record, err := SaveAs(dir, "123", e)
	require.NoError(t, err)
	require.Equal(t, "123", record.Timestamp)
	require.Equal(t, filepath.Join(dir, "123_m1.mtx"), record.M1.Path)
	require.Equal(t, filepath.Join(dir, "123_m2.mtx"), record.M2.Path)
	require.Equal(t, filepath.Join(dir, "123_product.mtx"), record.Product.Path)

	for _, pair := range []struct {
		info MatrixInfo
		m    *boolmat.Matrix
	}{
		{record.M1, e.M1},
		{record.M2, e.M2},
		{record.Product, e.Product},
	} {
		read, err := matrixmarket.ReadFile(pair.info.Path)
		require.NoError(t, err)
		require.True(t, read.Equals(pair.m))
		require.Equal(t, pair.m.NonZeros(), pair.info.NonZeros)
		require.Equal(t, pair.m.Rows(), pair.info.Rows)
		require.Equal(t, pair.m.Cols(), pair.info.Cols)
	}
	require.InDelta(t, e.ProductDensity, record.Product.Density, 1e-12)
}

func TestSaveUnwritable(t *testing.T) {
	// a regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	e, err := Generate(
		fixed(2, 2, boolmat.Coord{Row: 0, Col: 0}),
		fixed(2, 2, boolmat.Coord{Row: 0, Col: 1}),
	)
	require.NoError(t, err)
	before := e.Product.Coords()

	record, err := Save(filepath.Join(blocker, "out"), e)
	require.Error(t, err)
	require.NotEmpty(t, record.Timestamp)
	require.Equal(t, 1, record.M1.NonZeros)
	require.Equal(t, 1, record.Product.NonZeros)
	require.InDelta(t, 0.25, record.Product.Density, 1e-12)
	require.Equal(t, before, e.Product.Coords())
}

func TestTimestampUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Timestamp()] = true
	}
	// nanosecond clock plus a random suffix
	require.Greater(t, len(seen), 90)
}

func ExampleGenerate() {
	identity := func() (*boolmat.Matrix, error) {
		return boolmat.New(2, 2, []boolmat.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	}
	anti := func() (*boolmat.Matrix, error) {
		return boolmat.New(2, 2, []boolmat.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}})
	}
	e, _ := Generate(identity, anti)
	fmt.Println(e.Product, e.ProductDensity)
	//Output:
	//(2 x 2, nnz:2){(0,1) (1,0)} 0.5
}

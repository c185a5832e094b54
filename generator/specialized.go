package generator

import (
	"fmt"

	"github.com/nathanhack/matgen/boolmat"
	"gonum.org/v1/gonum/stat/distuv"
)

//ColumnVariant selects how OneCol turns nnzSparsity into an inclusion probability.
type ColumnVariant int

const (
	// ColumnDensity includes each entry with probability 1-nnzSparsity, like OneRow.
	ColumnDensity ColumnVariant = iota
	// ColumnInverted includes each entry with probability nnzSparsity.
	ColumnInverted
)

func (v ColumnVariant) String() string {
	switch v {
	case ColumnDensity:
		return "density"
	case ColumnInverted:
		return "inverted"
	}
	return fmt.Sprintf("ColumnVariant(%d)", int(v))
}

//ParseColumnVariant is the inverse of ColumnVariant.String.
func ParseColumnVariant(s string) (ColumnVariant, error) {
	switch s {
	case "density":
		return ColumnDensity, nil
	case "inverted":
		return ColumnInverted, nil
	}
	return 0, fmt.Errorf("%w: unknown column variant %q (density, inverted)", ErrInvalidSpec, s)
}

func (g *Generator) bernoulli(p float64) func() bool {
	dist := distuv.Bernoulli{P: p, Src: g.rng}
	return func() bool {
		return dist.Rand() == 1
	}
}

//OneRow creates a size x size matrix whose entries are all in row 0, each
// column present with probability 1-nnzSparsity.
func (g *Generator) OneRow(size, maxNNZ int, nnzSparsity float64) (*boolmat.Matrix, error) {
	if err := validateVector(size, maxNNZ, nnzSparsity); err != nil {
		return nil, err
	}

	include := g.bernoulli(1 - nnzSparsity)
	coords := make([]boolmat.Coord, 0)
	for col := 0; col < size; col++ {
		if include() {
			coords = append(coords, boolmat.Coord{Row: 0, Col: col})
		}
	}
	return boolmat.FromSorted(size, size, g.truncate(coords, maxNNZ)), nil
}

//OneCol creates a size x size matrix whose entries are all in column 0. The
// inclusion probability depends on variant.
func (g *Generator) OneCol(size, maxNNZ int, nnzSparsity float64, variant ColumnVariant) (*boolmat.Matrix, error) {
	if err := validateVector(size, maxNNZ, nnzSparsity); err != nil {
		return nil, err
	}

	var p float64
	switch variant {
	case ColumnDensity:
		p = 1 - nnzSparsity
	case ColumnInverted:
		p = nnzSparsity
	default:
		return nil, fmt.Errorf("%w: unknown column variant %v", ErrInvalidSpec, variant)
	}

	include := g.bernoulli(p)
	coords := make([]boolmat.Coord, 0)
	for row := 0; row < size; row++ {
		if include() {
			coords = append(coords, boolmat.Coord{Row: row, Col: 0})
		}
	}
	return boolmat.FromSorted(size, size, g.truncate(coords, maxNNZ)), nil
}

//MultipleCols selects about rows*(1-rowSparsity) rows uniformly and fills them
// across every column with probability 1-nnzSparsity. The result is a few long
// rows, i.e. many columns per selected row.
func (g *Generator) MultipleCols(rows, cols, maxNNZ int, nnzSparsity, rowSparsity float64) (*boolmat.Matrix, error) {
	if err := validateAxis(rows, cols, maxNNZ, nnzSparsity, rowSparsity); err != nil {
		return nil, err
	}

	selected := sortedKeys(SampleSet(NewSampler(g.rng, Uniform, 0, rows-1), keepCount(rows, rowSparsity)))
	include := g.bernoulli(1 - nnzSparsity)

	coords := make([]boolmat.Coord, 0)
	for _, row := range selected {
		for col := 0; col < cols; col++ {
			if include() {
				coords = append(coords, boolmat.Coord{Row: row, Col: col})
			}
		}
	}
	return boolmat.FromSorted(rows, cols, g.truncate(coords, maxNNZ)), nil
}

//MultipleRows selects about cols*(1-colSparsity) columns uniformly and fills them
// down every row with probability 1-nnzSparsity.
func (g *Generator) MultipleRows(rows, cols, maxNNZ int, nnzSparsity, colSparsity float64) (*boolmat.Matrix, error) {
	if err := validateAxis(rows, cols, maxNNZ, nnzSparsity, colSparsity); err != nil {
		return nil, err
	}

	selected := sortedKeys(SampleSet(NewSampler(g.rng, Uniform, 0, cols-1), keepCount(cols, colSparsity)))
	include := g.bernoulli(1 - nnzSparsity)

	coords := make([]boolmat.Coord, 0)
	for row := 0; row < rows; row++ {
		for _, col := range selected {
			if include() {
				coords = append(coords, boolmat.Coord{Row: row, Col: col})
			}
		}
	}
	return boolmat.FromSorted(rows, cols, g.truncate(coords, maxNNZ)), nil
}

// truncate enforces maxNNZ with a uniform shuffle when coords holds more.
func (g *Generator) truncate(coords []boolmat.Coord, maxNNZ int) []boolmat.Coord {
	if len(coords) <= maxNNZ {
		return coords
	}
	return Trim(g.rng, coords, maxNNZ)
}

func validateVector(size, maxNNZ int, nnzSparsity float64) error {
	if err := validSize("size", size); err != nil {
		return err
	}
	if err := validMaxNonZeros(maxNNZ); err != nil {
		return err
	}
	return validFraction("nnz sparsity", nnzSparsity)
}

func validateAxis(rows, cols, maxNNZ int, nnzSparsity, axisSparsity float64) error {
	if err := validSize("rows", rows); err != nil {
		return err
	}
	if err := validSize("cols", cols); err != nil {
		return err
	}
	if err := validMaxNonZeros(maxNNZ); err != nil {
		return err
	}
	if err := validFraction("nnz sparsity", nnzSparsity); err != nil {
		return err
	}
	return validFraction("axis sparsity", axisSparsity)
}

package entry

import (
	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/generator"
)

//Fractions are the structural parameters of one general operand.
type Fractions struct {
	NonZero   float64 `json:"nnz_sparsity" yaml:"nnz_sparsity"`
	Row       float64 `json:"row_sparsity" yaml:"row_sparsity"`
	Col       float64 `json:"col_sparsity" yaml:"col_sparsity"`
	Diag      float64 `json:"diag_sparsity" yaml:"diag_sparsity"`
	Symmetric bool    `json:"symmetric" yaml:"symmetric"`
}

func (f Fractions) spec(rows, cols, maxNNZ int) generator.Spec {
	return generator.Spec{
		Rows:            rows,
		Cols:            cols,
		MaxNonZeros:     maxNNZ,
		NonZeroSparsity: f.NonZero,
		RowSparsity:     f.Row,
		ColSparsity:     f.Col,
		DiagSparsity:    f.Diag,
		Symmetric:       f.Symmetric,
	}
}

//Mode wires a generator into the two operand producers of an entry.
type Mode func(g *generator.Generator) (m1, m2 MatrixFunc)

//Run generates an entry for mode using g.
func Run(g *generator.Generator, mode Mode) (*Entry, error) {
	return Generate(mode(g))
}

//Rectangle multiplies a general m1Rows x inner operand with a general
// inner x m2Cols operand.
func Rectangle(m1Rows, inner, m2Cols, maxNNZ int, f1, f2 Fractions) Mode {
	return func(g *generator.Generator) (MatrixFunc, MatrixFunc) {
		return func() (*boolmat.Matrix, error) {
				return g.Matrix(f1.spec(m1Rows, inner, maxNNZ))
			}, func() (*boolmat.Matrix, error) {
				return g.Matrix(f2.spec(inner, m2Cols, maxNNZ))
			}
	}
}

//Square is Rectangle with every dimension equal to size.
func Square(size, maxNNZ int, f1, f2 Fractions) Mode {
	return Rectangle(size, size, size, maxNNZ, f1, f2)
}

//HorizontalVertical multiplies a general operand limited to one sampled column
// (column sparsity 1, no row or diagonal restriction) by a single column.
func HorizontalVertical(size, maxNNZ int, nnz1, nnz2 float64, variant generator.ColumnVariant) Mode {
	f1 := Fractions{NonZero: nnz1, Row: 0, Col: 1, Diag: 0}
	return func(g *generator.Generator) (MatrixFunc, MatrixFunc) {
		return func() (*boolmat.Matrix, error) {
				return g.Matrix(f1.spec(size, size, maxNNZ))
			}, func() (*boolmat.Matrix, error) {
				return g.OneCol(size, size, nnz2, variant)
			}
	}
}

//InnerProduct multiplies a single row by a single column, so the product has
// at most the (0,0) entry.
func InnerProduct(size int, nnz1, nnz2 float64, variant generator.ColumnVariant) Mode {
	return func(g *generator.Generator) (MatrixFunc, MatrixFunc) {
		return func() (*boolmat.Matrix, error) {
				return g.OneRow(size, size, nnz1)
			}, func() (*boolmat.Matrix, error) {
				return g.OneCol(size, size, nnz2, variant)
			}
	}
}

//OuterProduct multiplies a single column by a single row.
func OuterProduct(size int, nnz1, nnz2 float64, variant generator.ColumnVariant) Mode {
	return func(g *generator.Generator) (MatrixFunc, MatrixFunc) {
		return func() (*boolmat.Matrix, error) {
				return g.OneCol(size, size, nnz1, variant)
			}, func() (*boolmat.Matrix, error) {
				return g.OneRow(size, size, nnz2)
			}
	}
}

//ExtremeCases builds two candidate operands, a few full rows (MultipleCols
// with nnz1, rc1) and a few full columns (MultipleRows with nnz2, rc2), and
// picks each side of the product independently at random from them.
func ExtremeCases(size, maxNNZ int, nnz1, rc1, nnz2, rc2 float64) Mode {
	return func(g *generator.Generator) (MatrixFunc, MatrixFunc) {
		candidates := [2]MatrixFunc{
			func() (*boolmat.Matrix, error) {
				return g.MultipleCols(size, size, maxNNZ, nnz1, rc1)
			},
			func() (*boolmat.Matrix, error) {
				return g.MultipleRows(size, size, maxNNZ, nnz2, rc2)
			},
		}
		rng := g.Rand()
		return candidates[rng.Intn(2)], candidates[rng.Intn(2)]
	}
}

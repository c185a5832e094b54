// Package entry builds one labeled example: two generated operands, their
// boolean product and the densities of all three.
package entry

import (
	"fmt"

	"github.com/nathanhack/matgen/boolmat"
)

//MatrixFunc produces one operand.
type MatrixFunc func() (*boolmat.Matrix, error)

//Entry is a generated operand pair with its product and densities.
type Entry struct {
	M1, M2, Product *boolmat.Matrix

	M1Density      float64
	M2Density      float64
	ProductDensity float64
}

//Generate runs m1 then m2 and multiplies the results. The operands must agree
// on the inner dimension, otherwise the error wraps boolmat.ErrDimensionMismatch.
func Generate(m1, m2 MatrixFunc) (*Entry, error) {
	a, err := m1()
	if err != nil {
		return nil, fmt.Errorf("matrix 1: %w", err)
	}
	b, err := m2()
	if err != nil {
		return nil, fmt.Errorf("matrix 2: %w", err)
	}

	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%w: matrix 1 is %vx%v and matrix 2 is %vx%v",
			boolmat.ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	product := boolmat.Mul(a, b)
	return &Entry{
		M1:             a,
		M2:             b,
		Product:        product,
		M1Density:      a.Density(),
		M2Density:      b.Density(),
		ProductDensity: product.Density(),
	}, nil
}

func (e *Entry) String() string {
	return fmt.Sprintf("m1:%vx%v nnz:%v (%.6f) m2:%vx%v nnz:%v (%.6f) product:%vx%v nnz:%v (%.6f)",
		e.M1.Rows(), e.M1.Cols(), e.M1.NonZeros(), e.M1Density,
		e.M2.Rows(), e.M2.Cols(), e.M2.NonZeros(), e.M2Density,
		e.Product.Rows(), e.Product.Cols(), e.Product.NonZeros(), e.ProductDensity)
}

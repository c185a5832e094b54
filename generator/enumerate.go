package generator

import (
	"github.com/nathanhack/matgen/boolmat"
)

//Enumerate lists every coordinate allowed by the constraints. For symmetric
// matrices only the lower triangle (diagonal included) is scanned and each
// off-diagonal hit is mirrored when the mirror is inside the matrix.
func Enumerate(rows, cols int, c Constraints, symmetric bool) []boolmat.Coord {
	result := make([]boolmat.Coord, 0)

	for row := 0; row < rows; row++ {
		if !c.Rows[row] {
			continue
		}

		lastCol := cols
		if symmetric && row+1 < cols {
			lastCol = row + 1
		}

		for col := 0; col < lastCol; col++ {
			if c.ExcludedDiags[row-col] || !c.Cols[col] {
				continue
			}

			result = append(result, boolmat.Coord{Row: row, Col: col})
			if symmetric && row != col && col < rows && row < cols {
				result = append(result, boolmat.Coord{Row: col, Col: row})
			}
		}
	}
	return result
}

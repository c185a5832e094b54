package boolmat

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/slices"
)

var (
	ErrBadShape          = errors.New("boolmat: rows and cols must be > 0")
	ErrOutOfRange        = errors.New("boolmat: coordinate out of range")
	ErrDimensionMismatch = errors.New("boolmat: dimension mismatch")
)

//Coord is the position of a present entry.
type Coord struct {
	Row, Col int
}

// Compare orders coordinates row-major.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Row < o.Row:
		return -1
	case c.Row > o.Row:
		return 1
	case c.Col < o.Col:
		return -1
	case c.Col > o.Col:
		return 1
	}
	return 0
}

//Matrix is a sparse matrix over the boolean semiring. Entries are either present
// or absent. The coordinate list is unique and kept in row-major order, a Matrix
// is never modified after it is built.
type Matrix struct {
	rows, cols int
	coords     []Coord
}

//New creates a rows x cols matrix with the coordinates given. Coordinates may be
// in any order and may repeat, they are sorted and deduplicated.
func New(rows, cols int, coords []Coord) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrBadShape, rows, cols)
	}
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: %v not in (%v, %v)", ErrOutOfRange, c, rows, cols)
		}
	}

	sorted := append([]Coord(nil), coords...)
	slices.SortFunc(sorted, Coord.Compare)
	sorted = slices.Compact(sorted)

	return &Matrix{rows: rows, cols: cols, coords: sorted}, nil
}

//FromSorted wraps coordinates that are already unique, in bounds and row-major.
// It takes ownership of coords. It panics when the order is violated.
func FromSorted(rows, cols int, coords []Coord) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix shape (%v, %v) requires rows > 0 and cols > 0", rows, cols))
	}
	for i := 1; i < len(coords); i++ {
		if coords[i-1].Compare(coords[i]) >= 0 {
			panic(fmt.Sprintf("coordinates must be strictly row-major: %v before %v", coords[i-1], coords[i]))
		}
	}
	return &Matrix{rows: rows, cols: cols, coords: coords}
}

//Empty returns the all-zero rows x cols matrix.
func Empty(rows, cols int) *Matrix {
	return FromSorted(rows, cols, nil)
}

func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// NonZeros is the number of present entries.
func (m *Matrix) NonZeros() int {
	return len(m.coords)
}

//Coords returns a copy of the present coordinates in row-major order.
func (m *Matrix) Coords() []Coord {
	return append([]Coord(nil), m.coords...)
}

//Each calls fn for each present entry in row-major order.
func (m *Matrix) Each(fn func(row, col int)) {
	for _, c := range m.coords {
		fn(c.Row, c.Col)
	}
}

//Has reports whether (row, col) is present.
func (m *Matrix) Has(row, col int) bool {
	_, found := slices.BinarySearchFunc(m.coords, Coord{row, col}, Coord.Compare)
	return found
}

//Density is NonZeros / (rows * cols).
func (m *Matrix) Density() float64 {
	return float64(len(m.coords)) / (float64(m.rows) * float64(m.cols))
}

//IsZero reports if there are no present entries.
func (m *Matrix) IsZero() bool {
	return len(m.coords) == 0
}

//Equals compares shape and support.
func (m *Matrix) Equals(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.coords, o.coords)
}

// rowRanges returns, for each row, the start offset of that row inside coords.
// The slice has rows+1 entries so row r spans [start[r], start[r+1]).
func (m *Matrix) rowRanges() []int {
	start := make([]int, m.rows+1)
	for _, c := range m.coords {
		start[c.Row+1]++
	}
	for r := 0; r < m.rows; r++ {
		start[r+1] += start[r]
	}
	return start
}

//Mul returns the boolean product a*b where (i,j) is present iff some k has
// a(i,k) and b(k,j) present. It panics when a's cols != b's rows.
func Mul(a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic(fmt.Sprintf("%v: a.cols == %v is required to equal b.rows but found %v", ErrDimensionMismatch, a.cols, b.rows))
	}

	bStart := b.rowRanges()
	aStart := a.rowRanges()

	// marker[j] == i+1 means (i,j) has already been emitted for row i
	marker := make([]int, b.cols)
	result := make([]Coord, 0)
	rowCols := make([]int, 0)

	for i := 0; i < a.rows; i++ {
		rowCols = rowCols[:0]
		for _, ak := range a.coords[aStart[i]:aStart[i+1]] {
			for _, bk := range b.coords[bStart[ak.Col]:bStart[ak.Col+1]] {
				if marker[bk.Col] == i+1 {
					continue
				}
				marker[bk.Col] = i + 1
				rowCols = append(rowCols, bk.Col)
			}
		}
		slices.Sort(rowCols)
		for _, j := range rowCols {
			result = append(result, Coord{i, j})
		}
	}

	return FromSorted(a.rows, b.cols, result)
}

//T returns the transpose.
func (m *Matrix) T() *Matrix {
	coords := make([]Coord, len(m.coords))
	for i, c := range m.coords {
		coords[i] = Coord{Row: c.Col, Col: c.Row}
	}
	slices.SortFunc(coords, Coord.Compare)
	return FromSorted(m.cols, m.rows, coords)
}

//IsSymmetric reports whether every present (r,c), with (c,r) inside the matrix,
// has (c,r) present too. For square matrices this is m == m^T.
func (m *Matrix) IsSymmetric() bool {
	for _, c := range m.coords {
		if c.Row == c.Col || c.Col >= m.rows || c.Row >= m.cols {
			continue
		}
		if !m.Has(c.Col, c.Row) {
			return false
		}
	}
	return true
}

//ToSparseMat converts to a GF(2) sparse matrix with a 1 for every present entry.
func (m *Matrix) ToSparseMat() mat.SparseMat {
	result := mat.DOKMat(m.rows, m.cols)
	for _, c := range m.coords {
		result.Set(c.Row, c.Col, 1)
	}
	return result
}

//FromSparseMat builds a Matrix from the nonzero entries of a GF(2) sparse matrix.
func FromSparseMat(s mat.SparseMat) *Matrix {
	rows, cols := s.Dims()
	coords := make([]Coord, 0)
	for r := 0; r < rows; r++ {
		for _, c := range s.Row(r).NonzeroArray() {
			coords = append(coords, Coord{r, c})
		}
	}
	slices.SortFunc(coords, Coord.Compare)
	return FromSorted(rows, cols, coords)
}

//Fingerprint is a md5 sum over the shape and coordinates, used to detect duplicates.
func (m *Matrix) Fingerprint() string {
	h := md5.New()
	fmt.Fprintf(h, "%v %v\n", m.rows, m.cols)
	for _, c := range m.coords {
		fmt.Fprintf(h, "%v %v\n", c.Row, c.Col)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (m *Matrix) String() string {
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("(%v x %v, nnz:%v){", m.rows, m.cols, len(m.coords)))
	for i, c := range m.coords {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(fmt.Sprintf("(%v,%v)", c.Row, c.Col))
	}
	buf.WriteString("}")
	return buf.String()
}

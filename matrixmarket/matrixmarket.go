// Package matrixmarket reads and writes boolean matrices in the MatrixMarket
// coordinate format. Entries are written with the value 1 and 1-based indices.
package matrixmarket

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathanhack/matgen/boolmat"
)

const Header = "%%MatrixMarket matrix coordinate real general"

//Write streams m to w. Entries are emitted in the matrix's row-major order.
func Write(w io.Writer, m *boolmat.Matrix) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Dims()

	if _, err := fmt.Fprintf(bw, "%v\n%v %v %v\n", Header, rows, cols, m.NonZeros()); err != nil {
		return err
	}

	var err error
	m.Each(func(row, col int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, "%v %v 1\n", row+1, col+1)
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

//WriteFile creates (or truncates) path and writes m into it.
func WriteFile(path string, m *boolmat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %v: %w", path, err)
	}

	err = Write(f, m)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("unable to write %v: %w", path, err)
	}
	return nil
}

//Read parses a coordinate MatrixMarket stream. Values are ignored, every listed
// entry is present.
func Read(r io.Reader) (*boolmat.Matrix, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	rows, cols, nnz := -1, -1, -1
	coords := make([]boolmat.Coord, 0)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		fields := strings.Fields(text)

		if rows < 0 {
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %v: expected '<rows> <cols> <nnz>' but found %q", line, text)
			}
			dims, err := atoi(fields)
			if err != nil {
				return nil, fmt.Errorf("line %v: %w", line, err)
			}
			rows, cols, nnz = dims[0], dims[1], dims[2]
			if rows <= 0 || cols <= 0 || nnz < 0 || (nnz > 0 && (nnz-1)/cols >= rows) {
				return nil, fmt.Errorf("line %v: invalid size %v x %v with %v entries", line, rows, cols, nnz)
			}
			// the header is untrusted, the slice grows past this as entries arrive
			coords = make([]boolmat.Coord, 0, min(nnz, 1<<16))
			continue
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("line %v: expected '<row> <col> [value]' but found %q", line, text)
		}
		idx, err := atoi(fields[:2])
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		if idx[0] < 1 || idx[0] > rows || idx[1] < 1 || idx[1] > cols {
			return nil, fmt.Errorf("line %v: entry (%v, %v) outside of %v x %v", line, idx[0], idx[1], rows, cols)
		}
		if len(coords) == nnz {
			return nil, fmt.Errorf("line %v: more than the %v entries declared", line, nnz)
		}
		coords = append(coords, boolmat.Coord{Row: idx[0] - 1, Col: idx[1] - 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if rows < 0 {
		return nil, fmt.Errorf("missing size line")
	}
	if len(coords) != nnz {
		return nil, fmt.Errorf("expected %v entries but found %v", nnz, len(coords))
	}

	m, err := boolmat.New(rows, cols, coords)
	if err != nil {
		return nil, err
	}
	if m.NonZeros() != nnz {
		return nil, fmt.Errorf("expected %v distinct entries but found %v", nnz, m.NonZeros())
	}
	return m, nil
}

//ReadFile opens path and reads it with Read.
func ReadFile(path string) (*boolmat.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", path, err)
	}
	return m, nil
}

func atoi(fields []string) ([]int, error) {
	result := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

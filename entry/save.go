package entry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/matrixmarket"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

//MatrixInfo describes one saved matrix of a Record.
type MatrixInfo struct {
	Path     string  `json:"path"`
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	NonZeros int     `json:"nnz"`
	Density  float64 `json:"nnz_density"`
}

func infoOf(path string, m *boolmat.Matrix) MatrixInfo {
	return MatrixInfo{
		Path:     path,
		Rows:     m.Rows(),
		Cols:     m.Cols(),
		NonZeros: m.NonZeros(),
		Density:  m.Density(),
	}
}

//Record is what is kept about a saved entry: the shared timestamp and, per
// matrix, where it went and its size.
type Record struct {
	Timestamp string     `json:"timestamp"`
	M1        MatrixInfo `json:"m1"`
	M2        MatrixInfo `json:"m2"`
	Product   MatrixInfo `json:"product"`
}

//Timestamp is the unix time in nanoseconds followed by a random number in
// [0, 1000) so entries saved in the same instant get distinct names.
func Timestamp() string {
	return fmt.Sprintf("%v%v", time.Now().UnixNano(), rand.Intn(1000))
}

//Save writes the three matrices of e into dir as <timestamp>_m1.mtx,
// <timestamp>_m2.mtx and <timestamp>_product.mtx. Write failures are logged
// and returned together, the Record is complete either way.
func Save(dir string, e *Entry) (Record, error) {
	return SaveAs(dir, Timestamp(), e)
}

//SaveAs is Save with a caller chosen timestamp.
func SaveAs(dir, timestamp string, e *Entry) (Record, error) {
	record := Record{
		Timestamp: timestamp,
		M1:        infoOf(filepath.Join(dir, timestamp+"_m1.mtx"), e.M1),
		M2:        infoOf(filepath.Join(dir, timestamp+"_m2.mtx"), e.M2),
		Product:   infoOf(filepath.Join(dir, timestamp+"_product.mtx"), e.Product),
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.Errorf("failed to create %v: %v", dir, err)
		return record, err
	}

	var errs []error
	for _, out := range []struct {
		name string
		path string
		m    *boolmat.Matrix
	}{
		{"matrix 1", record.M1.Path, e.M1},
		{"matrix 2", record.M2.Path, e.M2},
		{"product", record.Product.Path, e.Product},
	} {
		if err := matrixmarket.WriteFile(out.path, out.m); err != nil {
			logrus.Errorf("failed to save %v to %v: %v", out.name, out.path, err)
			errs = append(errs, err)
		}
	}
	return record, errors.Join(errs...)
}

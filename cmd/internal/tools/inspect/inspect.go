package inspect

import (
	"fmt"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/matrixmarket"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Verbose bool

//Report describes one matrix file.
type Report struct {
	Path        string
	Rows        int
	Cols        int
	NonZeros    int
	Density     float64
	Symmetric   bool
	Fingerprint string
}

func (r Report) String() string {
	return fmt.Sprintf("%v: %vx%v nnz:%v density:%0.06f symmetric:%v md5:%v",
		r.Path, r.Rows, r.Cols, r.NonZeros, r.Density, r.Symmetric, r.Fingerprint)
}

//Inspect reads a matrix file and reports on it. Symmetry is cross checked
// against the GF(2) sparse matrix transpose.
func Inspect(path string) (Report, error) {
	m, err := matrixmarket.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	return report(path, m)
}

func report(path string, m *boolmat.Matrix) (Report, error) {

	symmetric := m.IsSymmetric()
	if m.Rows() == m.Cols() {
		s := m.ToSparseMat()
		if s.T().Equals(s) != symmetric {
			return Report{}, fmt.Errorf("symmetry check disagrees for %v", path)
		}
	}

	return Report{
		Path:        path,
		Rows:        m.Rows(),
		Cols:        m.Cols(),
		NonZeros:    m.NonZeros(),
		Density:     m.Density(),
		Symmetric:   symmetric,
		Fingerprint: m.Fingerprint(),
	}, nil
}

var InspectRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if len(args) < 1 {
		fmt.Println("requires at least one MATRIX_MTX")
		return
	}

	seen := make(map[string]string)
	for _, path := range args {
		m, err := matrixmarket.ReadFile(path)
		if err != nil {
			fmt.Println(err)
			continue
		}
		logrus.Debug(m)

		r, err := report(path, m)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
		if first, ok := seen[r.Fingerprint]; ok {
			fmt.Printf("%v duplicates %v\n", path, first)
		} else {
			seen[r.Fingerprint] = path
		}
	}
}

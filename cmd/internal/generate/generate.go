package generate

import (
	"fmt"

	"github.com/nathanhack/matgen/boolmat"
	"github.com/nathanhack/matgen/generator"
	"github.com/nathanhack/matgen/matrixmarket"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Rows            uint
	Cols            uint
	Size            uint
	MaxNonZeros     uint
	NonZeroSparsity float64
	RowSparsity     float64
	ColSparsity     float64
	DiagSparsity    float64
	AxisSparsity    float64
	Symmetric       bool
	Variant         string
	Seed            uint64
	Verbose         bool
)

func newGenerator() *generator.Generator {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if Seed == 0 {
		return generator.NewRandom()
	}
	return generator.New(Seed)
}

func save(path string, m *boolmat.Matrix, err error) {
	if err != nil {
		fmt.Println("Unable to generate matrix: ", err)
		return
	}

	if err := matrixmarket.WriteFile(path, m); err != nil {
		fmt.Println("unable to write file: ", err)
		return
	}

	rows, cols := m.Dims()
	fmt.Printf("%vx%v nnz:%v density:%v -> %v\n", rows, cols, m.NonZeros(), m.Density(), path)
}

var MatrixRun = func(cmd *cobra.Command, args []string) {
	g := newGenerator()
	m, err := g.Matrix(generator.Spec{
		Rows:            int(Rows),
		Cols:            int(Cols),
		MaxNonZeros:     int(MaxNonZeros),
		NonZeroSparsity: NonZeroSparsity,
		RowSparsity:     RowSparsity,
		ColSparsity:     ColSparsity,
		DiagSparsity:    DiagSparsity,
		Symmetric:       Symmetric,
	})
	save(args[0], m, err)
}

var OneRowRun = func(cmd *cobra.Command, args []string) {
	g := newGenerator()
	m, err := g.OneRow(int(Size), int(MaxNonZeros), NonZeroSparsity)
	save(args[0], m, err)
}

var OneColRun = func(cmd *cobra.Command, args []string) {
	variant, err := generator.ParseColumnVariant(Variant)
	if err != nil {
		fmt.Println(err)
		return
	}

	g := newGenerator()
	m, err := g.OneCol(int(Size), int(MaxNonZeros), NonZeroSparsity, variant)
	save(args[0], m, err)
}

var MultipleColsRun = func(cmd *cobra.Command, args []string) {
	g := newGenerator()
	m, err := g.MultipleCols(int(Rows), int(Cols), int(MaxNonZeros), NonZeroSparsity, AxisSparsity)
	save(args[0], m, err)
}

var MultipleRowsRun = func(cmd *cobra.Command, args []string) {
	g := newGenerator()
	m, err := g.MultipleRows(int(Rows), int(Cols), int(MaxNonZeros), NonZeroSparsity, AxisSparsity)
	save(args[0], m, err)
}

package entry

import (
	"encoding/json"
	"fmt"

	"github.com/nathanhack/matgen/entry"
	"github.com/nathanhack/matgen/generator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Size        uint
	M1Rows      uint
	Inner       uint
	M2Cols      uint
	MaxNonZeros uint
	M1          entry.Fractions
	M2          entry.Fractions
	RowCol1     float64
	RowCol2     float64
	Variant     string
	Seed        uint64
	Verbose     bool
)

func run(args []string, mode func() (entry.Mode, error)) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	m, err := mode()
	if err != nil {
		fmt.Println(err)
		return
	}

	g := generator.NewRandom()
	if Seed != 0 {
		g = generator.New(Seed)
	}

	e, err := entry.Run(g, m)
	if err != nil {
		fmt.Println("Unable to generate entry: ", err)
		return
	}
	logrus.Debugf("generated %v", e)

	// a failed save is logged, the record is still reported
	record, err := entry.Save(args[0], e)
	if err != nil {
		fmt.Println("unable to save entry: ", err)
	}

	bs, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Println("Unable to serialize the record: ", err)
		return
	}
	fmt.Println(string(bs))
}

func variant() (generator.ColumnVariant, error) {
	return generator.ParseColumnVariant(Variant)
}

var RectangleRun = func(cmd *cobra.Command, args []string) {
	run(args, func() (entry.Mode, error) {
		return entry.Rectangle(int(M1Rows), int(Inner), int(M2Cols), int(MaxNonZeros), M1, M2), nil
	})
}

var SquareRun = func(cmd *cobra.Command, args []string) {
	run(args, func() (entry.Mode, error) {
		return entry.Square(int(Size), int(MaxNonZeros), M1, M2), nil
	})
}

var HorizontalVerticalRun = func(cmd *cobra.Command, args []string) {
	run(args, func() (entry.Mode, error) {
		v, err := variant()
		return entry.HorizontalVertical(int(Size), int(MaxNonZeros), M1.NonZero, M2.NonZero, v), err
	})
}

var InnerRun = func(cmd *cobra.Command, args []string) {
	run(args, func() (entry.Mode, error) {
		v, err := variant()
		return entry.InnerProduct(int(Size), M1.NonZero, M2.NonZero, v), err
	})
}

var OuterRun = func(cmd *cobra.Command, args []string) {
	run(args, func() (entry.Mode, error) {
		v, err := variant()
		return entry.OuterProduct(int(Size), M1.NonZero, M2.NonZero, v), err
	})
}

var ExtremeRun = func(cmd *cobra.Command, args []string) {
	run(args, func() (entry.Mode, error) {
		return entry.ExtremeCases(int(Size), int(MaxNonZeros), M1.NonZero, RowCol1, M2.NonZero, RowCol2), nil
	})
}

package dataset

import (
	"fmt"
	"math"

	"github.com/nathanhack/matgen/entry"
	"github.com/nathanhack/matgen/generator"
	"golang.org/x/exp/rand"
)

//Job is one entry of a dataset with all of its parameters drawn.
type Job struct {
	Index int
	Mode  Mode

	M1Rows, Inner, M2Cols int
	MaxNonZeros           int

	F1, F2           entry.Fractions
	RowCol1, RowCol2 float64
	Variant          generator.ColumnVariant
}

func (j Job) String() string {
	return fmt.Sprintf("#%v %v %vx%vx%v maxNNZ:%v m1:%+v m2:%+v", j.Index, j.Mode, j.M1Rows, j.Inner, j.M2Cols, j.MaxNonZeros, j.F1, j.F2)
}

//EntryMode returns the entry producer for the job.
func (j Job) EntryMode() entry.Mode {
	switch j.Mode {
	case Square, WiderRange:
		return entry.Square(j.Inner, j.MaxNonZeros, j.F1, j.F2)
	case Rectangle, VectorInner, VectorOuter:
		return entry.Rectangle(j.M1Rows, j.Inner, j.M2Cols, j.MaxNonZeros, j.F1, j.F2)
	case InnerProduct:
		return entry.InnerProduct(j.Inner, j.F1.NonZero, j.F2.NonZero, j.Variant)
	case OuterProduct:
		return entry.OuterProduct(j.Inner, j.F1.NonZero, j.F2.NonZero, j.Variant)
	case HorizontalVertical:
		return entry.HorizontalVertical(j.Inner, j.MaxNonZeros, j.F1.NonZero, j.F2.NonZero, j.Variant)
	case ExtremeCases:
		return entry.ExtremeCases(j.Inner, j.MaxNonZeros, j.F1.NonZero, j.RowCol1, j.F2.NonZero, j.RowCol2)
	}
	panic(fmt.Sprintf("unknown mode %q", j.Mode))
}

func pickInt(rng *rand.Rand, values []int) int {
	return values[rng.Intn(len(values))]
}

func pickFloat(rng *rand.Rand, values []float64) float64 {
	return values[rng.Intn(len(values))]
}

func pickBool(rng *rand.Rand, values []bool) bool {
	return values[rng.Intn(len(values))]
}

func uniform(rng *rand.Rand, r Range) float64 {
	return r.Low + rng.Float64()*(r.High-r.Low)
}

// logSparsity is 1 - 10^u for u drawn from r.
func logSparsity(rng *rand.Rand, r Range) float64 {
	return math.Max(0, 1-math.Pow(10, uniform(rng, r)))
}

//Draw picks the parameters of job index from the config. The config must be valid.
func (c Config) Draw(rng *rand.Rand, index int) Job {
	job := Job{
		Index:       index,
		Mode:        c.Mode,
		MaxNonZeros: c.MaxNonZeros,
		Variant:     c.variant(),
	}

	fractions := func() entry.Fractions {
		return entry.Fractions{
			NonZero:   pickFloat(rng, c.NonZeroSparsity),
			Row:       pickFloat(rng, c.RowSparsity),
			Col:       pickFloat(rng, c.ColSparsity),
			Diag:      pickFloat(rng, c.DiagSparsity),
			Symmetric: pickBool(rng, c.Symmetric),
		}
	}
	square := func(size int) {
		job.M1Rows, job.Inner, job.M2Cols = size, size, size
	}

	switch c.Mode {
	case Square:
		square(pickInt(rng, c.Sizes))
		job.F1, job.F2 = fractions(), fractions()
	case Rectangle:
		job.M1Rows, job.Inner, job.M2Cols = pickInt(rng, c.Sizes), pickInt(rng, c.Sizes), pickInt(rng, c.Sizes)
		job.F1, job.F2 = fractions(), fractions()
	case VectorInner:
		job.M1Rows, job.Inner, job.M2Cols = 1, pickInt(rng, c.Sizes), 1
		job.F1, job.F2 = fractions(), fractions()
	case VectorOuter:
		job.M1Rows, job.Inner, job.M2Cols = pickInt(rng, c.Sizes), 1, pickInt(rng, c.Sizes)
		job.F1, job.F2 = fractions(), fractions()
	case InnerProduct, OuterProduct, HorizontalVertical:
		square(pickInt(rng, c.Sizes))
		job.F1.NonZero = pickFloat(rng, c.NonZeroSparsity)
		job.F2.NonZero = pickFloat(rng, c.NonZeroSparsity)
	case ExtremeCases:
		square(pickInt(rng, c.Sizes))
		job.F1.NonZero = pickFloat(rng, c.NonZeroSparsity)
		job.RowCol1 = pickFloat(rng, c.RowColSparsity)
		job.F2.NonZero = pickFloat(rng, c.NonZeroSparsity)
		job.RowCol2 = pickFloat(rng, c.RowColSparsity)
	case WiderRange:
		size := int(math.Pow(10, uniform(rng, c.SizeExponent)))
		if size < 1 {
			size = 1
		}
		square(size)
		wide := func() entry.Fractions {
			return entry.Fractions{
				NonZero:   logSparsity(rng, c.NonZeroExponent),
				Row:       logSparsity(rng, c.RowExponent),
				Col:       logSparsity(rng, c.ColExponent),
				Diag:      logSparsity(rng, c.DiagExponent),
				Symmetric: pickBool(rng, c.Symmetric),
			}
		}
		job.F1, job.F2 = wide(), wide()
	default:
		panic(fmt.Sprintf("unknown mode %q", c.Mode))
	}
	return job
}

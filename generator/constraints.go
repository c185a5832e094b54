package generator

import (
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//SampleSet draws from sample until target distinct values are collected or
// target*SamplingAttemptsFactor draws were made, whichever comes first.
func SampleSet(sample Sampler, target int) map[int]bool {
	set := make(map[int]bool, target)
	for i := 0; i < target*SamplingAttemptsFactor && len(set) < target; i++ {
		set[sample()] = true
	}
	return set
}

// keepCount is the number of indices of an n sized dimension kept for the given sparsity, at least 1.
func keepCount(n int, sparsity float64) int {
	count := int(math.Round(float64(n) * (1 - sparsity)))
	if count < 1 {
		return 1
	}
	return count
}

// excludedDiagonalCount leaves at least one of the rows+cols-1 diagonals eligible.
func excludedDiagonalCount(rows, cols int, diagSparsity float64) int {
	count := int(math.Round(float64(rows+cols-1) * diagSparsity))
	if count > rows+cols-2 {
		return rows + cols - 2
	}
	return count
}

//Constraints are the sampled rows, columns and excluded diagonals (row-col) of one attempt.
type Constraints struct {
	Rows          map[int]bool
	Cols          map[int]bool
	ExcludedDiags map[int]bool
}

func (g *Generator) sampleConstraints(spec Spec) Constraints {
	rowSampler, rowDist := SelectSampler(g.rng, 0, spec.Rows-1)
	colSampler, colDist := SelectSampler(g.rng, 0, spec.Cols-1)
	diagSampler, diagDist := SelectSampler(g.rng, -spec.Rows+1, spec.Cols-1)

	c := Constraints{
		Rows:          SampleSet(rowSampler, keepCount(spec.Rows, spec.RowSparsity)),
		Cols:          SampleSet(colSampler, keepCount(spec.Cols, spec.ColSparsity)),
		ExcludedDiags: SampleSet(diagSampler, excludedDiagonalCount(spec.Rows, spec.Cols, spec.DiagSparsity)),
	}

	logrus.Debugf("constraints rows:%v(%v) cols:%v(%v) excluded diags:%v(%v)",
		len(c.Rows), rowDist, len(c.Cols), colDist, len(c.ExcludedDiags), diagDist)
	return c
}

func sortedKeys(set map[int]bool) []int {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

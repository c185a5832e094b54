package generator

import (
	"github.com/nathanhack/matgen/boolmat"
	"github.com/sirupsen/logrus"
)

//Matrix generates a matrix for spec. If no coordinate satisfies the sampled
// constraints, every fraction is multiplied by RelaxationDecay and the draw is
// repeated; past MaxRelaxationDepth an empty matrix is returned with a warning.
func (g *Generator) Matrix(spec Spec) (*boolmat.Matrix, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.MaxNonZeros == 0 {
		return boolmat.Empty(spec.Rows, spec.Cols), nil
	}

	m, _ := g.relax(spec, g.candidates)
	return m, nil
}

func (g *Generator) candidates(spec Spec) []boolmat.Coord {
	return Enumerate(spec.Rows, spec.Cols, g.sampleConstraints(spec), spec.Symmetric)
}

// relax runs candidates until it yields coordinates, loosening spec between
// attempts. It returns the matrix and the number of relaxations applied.
func (g *Generator) relax(spec Spec, candidates func(Spec) []boolmat.Coord) (*boolmat.Matrix, int) {
	original := spec
	for depth := 0; ; depth++ {
		elements := candidates(spec)
		if len(elements) > 0 {
			limit := nonZeroLimit(spec, len(elements))
			if spec.Symmetric {
				return boolmat.FromSorted(spec.Rows, spec.Cols, TrimSymmetric(g.rng, elements, limit)), depth
			}
			return boolmat.FromSorted(spec.Rows, spec.Cols, Trim(g.rng, elements, limit)), depth
		}

		if depth > MaxRelaxationDepth {
			logrus.Warnf("unable to generate matrix %v after %v relaxations, returning an empty matrix", original, depth)
			return boolmat.Empty(spec.Rows, spec.Cols), depth
		}

		spec = spec.relaxed()
		logrus.Debugf("no candidates found, relaxing (%v) to %v", depth+1, spec)
	}
}

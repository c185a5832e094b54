// Package generator creates random sparse boolean matrices whose structure is
// controlled by a handful of fractions: how many rows and columns may hold
// entries, which diagonals are excluded, whether the support is symmetric and
// how many non-zeros are kept.
//
// Generation is rejection sampling. Rows, columns and excluded diagonals are
// drawn from a randomly chosen distribution (uniform, clipped normal or clipped
// geometric) so that consecutive matrices differ in shape, not only in
// placement. When the sampled constraints leave no legal coordinate the
// fractions are relaxed and the draw is repeated a bounded number of times.
//
// A Generator owns its random source and must not be shared between goroutines.
package generator

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

const (
	// SamplingAttemptsFactor bounds rejection sampling to target*SamplingAttemptsFactor draws.
	SamplingAttemptsFactor = 100
	// MaxRelaxationDepth is the deepest relaxation level still retried.
	MaxRelaxationDepth = 10
	// RelaxationDecay multiplies every fraction of a Spec on each relaxation.
	RelaxationDecay = 0.9
	// GeometricCoverage is the mass a geometric sampler puts inside its range.
	GeometricCoverage = 0.95
)

var ErrInvalidSpec = errors.New("generator: invalid specification")

//Spec describes one matrix to generate.
type Spec struct {
	Rows, Cols  int
	MaxNonZeros int

	NonZeroSparsity float64 // upper bound on density is 1-NonZeroSparsity
	RowSparsity     float64 // fraction of rows left empty
	ColSparsity     float64 // fraction of columns left empty
	DiagSparsity    float64 // fraction of diagonals excluded
	Symmetric       bool
}

//Validate returns an error wrapping ErrInvalidSpec when the spec can not be generated.
func (s Spec) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: rows and cols must be > 0 but found (%v, %v)", ErrInvalidSpec, s.Rows, s.Cols)
	}
	if s.MaxNonZeros < 0 {
		return fmt.Errorf("%w: max non-zeros must be >= 0 but found %v", ErrInvalidSpec, s.MaxNonZeros)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"nnz sparsity", s.NonZeroSparsity},
		{"row sparsity", s.RowSparsity},
		{"col sparsity", s.ColSparsity},
		{"diag sparsity", s.DiagSparsity},
	} {
		if err := validFraction(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func validFraction(name string, v float64) error {
	if !(0 <= v && v <= 1) {
		return fmt.Errorf("%w: %v must be in [0, 1] but found %v", ErrInvalidSpec, name, v)
	}
	return nil
}

func validSize(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %v must be > 0 but found %v", ErrInvalidSpec, name, v)
	}
	return nil
}

func validMaxNonZeros(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: max non-zeros must be >= 0 but found %v", ErrInvalidSpec, v)
	}
	return nil
}

// relaxed loosens every fraction by RelaxationDecay.
func (s Spec) relaxed() Spec {
	s.NonZeroSparsity *= RelaxationDecay
	s.RowSparsity *= RelaxationDecay
	s.ColSparsity *= RelaxationDecay
	s.DiagSparsity *= RelaxationDecay
	return s
}

func (s Spec) String() string {
	return fmt.Sprintf("{%vx%v maxNNZ:%v nnz:%v row:%v col:%v diag:%v symmetric:%v}",
		s.Rows, s.Cols, s.MaxNonZeros, s.NonZeroSparsity, s.RowSparsity, s.ColSparsity, s.DiagSparsity, s.Symmetric)
}

//Generator produces matrices from its own random source.
type Generator struct {
	rng *rand.Rand
}

//New creates a Generator with a deterministic seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

//NewRandom creates a Generator seeded from the clock.
func NewRandom() *Generator {
	return New(uint64(time.Now().UnixNano()))
}

// Rand exposes the generator's source for callers that make choices tied to
// the same stream (e.g. picking a generation mode).
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

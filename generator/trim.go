package generator

import (
	"math"

	"github.com/nathanhack/matgen/boolmat"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

//Trim keeps limit uniformly chosen coordinates of candidates and returns them
// in row-major order. candidates is reordered in place.
func Trim(rng *rand.Rand, candidates []boolmat.Coord, limit int) []boolmat.Coord {
	if limit <= 0 {
		return nil
	}
	if limit < len(candidates) {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		candidates = candidates[:limit]
	}
	slices.SortFunc(candidates, boolmat.Coord.Compare)
	return candidates
}

//TrimSymmetric is Trim for symmetric candidate pools: an off-diagonal
// coordinate and its mirror are kept or dropped together, so the result may
// hold one entry less than limit.
func TrimSymmetric(rng *rand.Rand, candidates []boolmat.Coord, limit int) []boolmat.Coord {
	if limit <= 0 {
		return nil
	}
	if limit >= len(candidates) {
		slices.SortFunc(candidates, boolmat.Coord.Compare)
		return candidates
	}

	units := mirrorUnits(candidates)
	rng.Shuffle(len(units), func(i, j int) {
		units[i], units[j] = units[j], units[i]
	})

	kept := make([]boolmat.Coord, 0, limit)
	for _, unit := range units {
		if len(kept)+len(unit) > limit {
			continue
		}
		kept = append(kept, unit...)
		if len(kept) == limit {
			break
		}
	}
	slices.SortFunc(kept, boolmat.Coord.Compare)
	return kept
}

// mirrorUnits groups each upper triangle coordinate with its lower triangle mirror.
func mirrorUnits(candidates []boolmat.Coord) [][]boolmat.Coord {
	units := make([][]boolmat.Coord, 0, len(candidates))
	lower := make(map[boolmat.Coord]int)
	for _, c := range candidates {
		if c.Row >= c.Col {
			lower[c] = len(units)
			units = append(units, []boolmat.Coord{c})
		}
	}
	for _, c := range candidates {
		if c.Row >= c.Col {
			continue
		}
		if i, has := lower[boolmat.Coord{Row: c.Col, Col: c.Row}]; has {
			units[i] = append(units[i], c)
			continue
		}
		units = append(units, []boolmat.Coord{c})
	}
	return units
}

// nonZeroLimit is min(maxNNZ, candidates, floor(rows*cols*(1-nnzSparsity))).
func nonZeroLimit(spec Spec, candidates int) int {
	limit := spec.MaxNonZeros
	if candidates < limit {
		limit = candidates
	}
	budget := int(math.Floor(float64(spec.Rows) * float64(spec.Cols) * (1 - spec.NonZeroSparsity)))
	if budget < limit {
		limit = budget
	}
	return limit
}

package generator

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//Distribution is the family a Sampler draws from.
type Distribution int

const (
	Uniform Distribution = iota
	Normal
	Geometric

	distributionCount = 3
)

func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	case Geometric:
		return "geometric"
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

//Sampler returns an integer in a fixed inclusive range on each call.
type Sampler func() int

//SelectSampler picks one of the distribution families at random and returns a
// sampler over [min, max] using it.
func SelectSampler(rng *rand.Rand, min, max int) (Sampler, Distribution) {
	d := Distribution(rng.Intn(distributionCount))
	return NewSampler(rng, d, min, max), d
}

//NewSampler returns a sampler over [min, max] for the given family.
//  Uniform: every value equally likely.
//  Normal: centered at (min+max)/2 with std (max-min)/4, truncated and clamped.
//  Geometric: counted from 0, p chosen so GeometricCoverage of the mass falls
//  within the range width, clamped.
func NewSampler(rng *rand.Rand, d Distribution, min, max int) Sampler {
	if min > max {
		panic(fmt.Sprintf("sampler range requires min <= max but found [%v, %v]", min, max))
	}

	switch d {
	case Uniform:
		width := int64(max-min) + 1
		return func() int {
			return min + int(rng.Int63n(width))
		}
	case Normal:
		dist := distuv.Normal{
			Mu:    float64((min + max) / 2),
			Sigma: float64((max - min) / 4),
			Src:   rng,
		}
		return func() int {
			return clamp(math.Trunc(dist.Rand()), min, max)
		}
	case Geometric:
		p := 1 - math.Pow(1-GeometricCoverage, 1/float64(max-min+1))
		logq := math.Log1p(-p)
		return func() int {
			// inverse transform: failures before the first success
			u := 1 - rng.Float64()
			return clamp(math.Floor(math.Log(u)/logq), min, max)
		}
	}
	panic(fmt.Sprintf("unknown distribution %v", d))
}

func clamp(v float64, min, max int) int {
	if v < float64(min) {
		return min
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}

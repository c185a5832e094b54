package dataset

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
	"os"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/matgen/entry"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

//Summary holds the density statistics of a set of entries.
type Summary struct {
	Name           string
	Entries        int
	Failed         int
	M1Density      avgstd.AvgStd
	M2Density      avgstd.AvgStd
	ProductDensity avgstd.AvgStd
	ProductMedian  float64
	ProductP90     float64
	EmptyOperands  int
	EmptyProducts  int
}

//Std is the sample standard deviation, 0 with fewer than two samples.
func Std(a avgstd.AvgStd) float64 {
	if a.Count < 2 {
		return 0
	}
	return math.Sqrt(a.SampledVariance())
}

func (s Summary) String() string {
	return fmt.Sprintf("{Entries:%v, Failed:%v, M1:%0.06f(+/-%0.06f), M2:%0.06f(+/-%0.06f), Product:%0.06f(+/-%0.06f) median:%0.06f p90:%0.06f, EmptyOperands:%v, EmptyProducts:%v}",
		s.Entries, s.Failed,
		s.M1Density.Mean, Std(s.M1Density),
		s.M2Density.Mean, Std(s.M2Density),
		s.ProductDensity.Mean, Std(s.ProductDensity),
		s.ProductMedian, s.ProductP90,
		s.EmptyOperands, s.EmptyProducts,
	)
}

//Summarize computes the statistics of records.
func Summarize(records []entry.Record) Summary {
	var s Summary
	products := make([]float64, 0, len(records))
	for _, r := range records {
		s.Entries++
		s.M1Density.Update(r.M1.Density)
		s.M2Density.Update(r.M2.Density)
		s.ProductDensity.Update(r.Product.Density)
		products = append(products, r.Product.Density)

		if r.M1.NonZeros == 0 {
			s.EmptyOperands++
		}
		if r.M2.NonZeros == 0 {
			s.EmptyOperands++
		}
		if r.Product.NonZeros == 0 {
			s.EmptyProducts++
		}
	}

	if len(products) > 0 {
		slices.Sort(products)
		s.ProductMedian = stat.Quantile(0.5, stat.Empirical, products, nil)
		s.ProductP90 = stat.Quantile(0.9, stat.Empirical, products, nil)
	}
	return s
}

//LoadSummary reads a summary saved with SaveSummary. A missing file returns nil.
func LoadSummary(path string) (*Summary, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", path, err)
	}

	var s Summary
	if err := json.Unmarshal(bs, &s); err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", path, err)
	}
	return &s, nil
}

//SaveSummary writes s as JSON.
func SaveSummary(path string, s Summary) error {
	bs, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing summary: %w", err)
	}

	if err := ioutil.WriteFile(path, bs, 0644); err != nil {
		return fmt.Errorf("error while saving summary to %v: %w", path, err)
	}
	return nil
}

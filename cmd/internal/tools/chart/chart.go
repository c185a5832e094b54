package chart

import (
	"fmt"
	"os"

	"github.com/nathanhack/matgen/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var Bins uint
var Operands bool

//ChartRun renders a histogram of product densities, one series per dataset CSV.
var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one DATASET_CSV")
		return
	}
	if Bins == 0 {
		fmt.Println("requires at least one bin")
		return
	}

	datasets, err := tools.LoadDatasets(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	subtitle := "Product Density"
	if Operands {
		subtitle = "Operand Density"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Datasets",
			Subtitle: subtitle,
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Density",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Fraction of Matrices",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(binNames(int(Bins)))

	for _, d := range datasets {
		densities := make([]float64, 0, len(d.Records))
		for _, r := range d.Records {
			if Operands {
				densities = append(densities, r.M1.Density, r.M2.Density)
			} else {
				densities = append(densities, r.Product.Density)
			}
		}
		bar.AddSeries(d.Name, series(histogram(densities, int(Bins))))
	}

	if err := bar.Render(f); err != nil {
		fmt.Println(err)
	}
}

func binNames(bins int) []string {
	names := make([]string, bins)
	for i := range names {
		names[i] = fmt.Sprintf("%0.2f-%0.2f", float64(i)/float64(bins), float64(i+1)/float64(bins))
	}
	return names
}

// histogram returns the fraction of values in each of bins equal width bins over [0, 1].
func histogram(values []float64, bins int) []float64 {
	result := make([]float64, bins)
	if len(values) == 0 {
		return result
	}
	for _, v := range values {
		b := int(v * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		if b < 0 {
			b = 0
		}
		result[b]++
	}
	for i := range result {
		result[i] /= float64(len(values))
	}
	return result
}

func series(fractions []float64) []opts.BarData {
	results := make([]opts.BarData, len(fractions))
	for i, v := range fractions {
		results[i] = opts.BarData{Value: v}
	}
	return results
}

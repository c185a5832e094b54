package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/nathanhack/matgen/cmd/internal/tools"
	"github.com/nathanhack/matgen/dataset"
	"github.com/spf13/cobra"
)

var OutputFile string

var header = []string{
	"dataset", "entries",
	"matrix 1 nnz density", "matrix 2 nnz density",
	"product nnz density", "product nnz density std", "product nnz density median", "product nnz density p90",
	"empty operands", "empty products",
}

//CSVRun writes one line of statistics per dataset CSV.
var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one DATASET_CSV")
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
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		fmt.Println(err)
		return
	}

	for _, d := range datasets {
		s := d.Summary
		record := []string{
			d.Name,
			fmt.Sprintf("%v", s.Entries),
			fmt.Sprintf("%v", s.M1Density.Mean),
			fmt.Sprintf("%v", s.M2Density.Mean),
			fmt.Sprintf("%v", s.ProductDensity.Mean),
			fmt.Sprintf("%v", dataset.Std(s.ProductDensity)),
			fmt.Sprintf("%v", s.ProductMedian),
			fmt.Sprintf("%v", s.ProductP90),
			fmt.Sprintf("%v", s.EmptyOperands),
			fmt.Sprintf("%v", s.EmptyProducts),
		}
		if err := w.Write(record); err != nil {
			fmt.Println(err)
			return
		}
	}
}

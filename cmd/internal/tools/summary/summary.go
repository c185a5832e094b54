package summary

import (
	"fmt"

	"github.com/nathanhack/matgen/cmd/internal/tools"
	"github.com/nathanhack/matgen/dataset"
	"github.com/spf13/cobra"
)

var OutputFile string

//SummaryRun prints the summary of each dataset CSV and optionally saves the
// summary of their union.
var SummaryRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one DATASET_CSV")
		return
	}

	datasets, err := tools.LoadDatasets(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, d := range datasets {
		fmt.Printf("%v: %v\n", d.Name, d.Summary)
	}

	if OutputFile == "" {
		return
	}

	combined := tools.Combine(datasets)
	if err := dataset.SaveSummary(OutputFile, combined); err != nil {
		fmt.Println(err)
	}
}

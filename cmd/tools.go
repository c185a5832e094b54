package cmd

import (
	"github.com/nathanhack/matgen/cmd/internal/tools/chart"
	"github.com/nathanhack/matgen/cmd/internal/tools/csv"
	"github.com/nathanhack/matgen/cmd/internal/tools/inspect"
	"github.com/nathanhack/matgen/cmd/internal/tools/summary"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for datasets",
	Long:    `Tools for datasets`,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize dataset statistics for graphing and comparison",
	Long:    `A tool to organize dataset statistics for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv DATASET_CSV [DATASET_CSV] ...",
	Aliases: []string{"c"},
	Short:   "Export statistics to a CSV file",
	Long:    `Export one line of density statistics per dataset to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart DATASET_CSV [DATASET_CSV] ...",
	Aliases: []string{"ch"},
	Short:   "Density histograms",
	Long:    `Renders a html bar chart of the density histogram of each dataset`,
	Run:     chart.ChartRun,
}

// toolsSummaryCmd represents the summary command
var toolsSummaryCmd = &cobra.Command{
	Use:     "summary DATASET_CSV [DATASET_CSV] ...",
	Aliases: []string{"s"},
	Short:   "Prints dataset summaries",
	Long:    `Prints the summary of each dataset and optionally saves the combined summary as JSON`,
	Run:     summary.SummaryRun,
}

// toolsInspectCmd represents the inspect command
var toolsInspectCmd = &cobra.Command{
	Use:     "inspect MATRIX_MTX [MATRIX_MTX] ...",
	Aliases: []string{"i"},
	Short:   "Reports on MatrixMarket files",
	Long:    `Reports the shape, density, symmetry and fingerprint of MatrixMarket files and flags duplicates`,
	Run:     inspect.InspectRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsResultsCmd)
	toolsCmd.AddCommand(toolsInspectCmd)
	toolsInspectCmd.Flags().BoolVarP(&inspect.Verbose, "verbose", "v", false, "print the matrix entries")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "density.html", "filename of the html chart")
	toolsChartCmd.Flags().UintVarP(&chart.Bins, "bins", "b", 20, "the number of density bins")
	toolsChartCmd.Flags().BoolVar(&chart.Operands, "operands", false, "chart the operand densities instead of the product densities")

	toolsResultsCmd.AddCommand(toolsSummaryCmd)
	toolsSummaryCmd.Flags().StringVarP(&summary.OutputFile, "output", "o", "", "filename of the combined summary json")
}

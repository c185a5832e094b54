package cmd

import (
	"strings"

	"github.com/nathanhack/matgen/cmd/internal/dataset"
	ds "github.com/nathanhack/matgen/dataset"

	"github.com/spf13/cobra"
)

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:     "dataset CONFIG_YAML",
	Aliases: []string{"d"},
	Short:   "Generates a dataset of multiplication entries",
	Long: `Generates a dataset of multiplication entries described by CONFIG_YAML.
Every entry is saved as three MatrixMarket files and indexed in the dataset CSV.
A missing CONFIG_YAML uses the defaults.`,
	Args: cobra.ExactArgs(1),
	Run:  dataset.DatasetRun,
}

// datasetInitCmd represents the init command
var datasetInitCmd = &cobra.Command{
	Use:   "init CONFIG_YAML",
	Short: "Writes a default dataset config",
	Long:  `Writes the default dataset config for a mode so it can be edited.`,
	Args:  cobra.ExactArgs(1),
	Run:   dataset.InitRun,
}

func modes() string {
	names := make([]string, len(ds.Modes))
	for i, m := range ds.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.Flags().UintVarP(&dataset.Entries, "entries", "e", 1000, "the number of entries; overrides the config")
	datasetCmd.Flags().UintVarP(&dataset.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	datasetCmd.Flags().Uint64Var(&dataset.Seed, "seed", 0, "the random seed; overrides the config")
	datasetCmd.Flags().StringVarP(&dataset.Output, "output", "o", "", "the matrix directory; overrides the config")
	datasetCmd.Flags().StringVar(&dataset.CSVPath, "csv", "", "the dataset CSV; overrides the config")
	datasetCmd.Flags().StringVar(&dataset.Summary, "summary", "", "the summary JSON; defaults to next to the CSV")
	datasetCmd.Flags().BoolVarP(&dataset.Progress, "progress", "p", true, "show a progress bar")
	datasetCmd.Flags().BoolVarP(&dataset.Verbose, "verbose", "v", false, "enable verbose info")

	datasetCmd.AddCommand(datasetInitCmd)
	datasetInitCmd.Flags().StringVarP(&dataset.Mode, "mode", "m", string(ds.Square), "the dataset mode: "+modes())
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "matgen",
	Short: "Generates sparse boolean matrix multiplication datasets",
	Long: `matgen creates random sparse boolean matrices under sparsity constraints,
pairs them into multiplication entries (m1, m2, m1*m2) and builds whole datasets
of entries saved as MatrixMarket files with a CSV index.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

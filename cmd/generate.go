package cmd

import (
	"github.com/nathanhack/matgen/cmd/internal/generate"

	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generates a single matrix",
	Long:    `Generates a single random sparse boolean matrix and saves it as a MatrixMarket file.`,
}

// generateMatrixCmd represents the matrix command
var generateMatrixCmd = &cobra.Command{
	Use:     "matrix OUTPUT_MTX",
	Aliases: []string{"m"},
	Short:   "A constrained random matrix",
	Long:    `A random matrix whose rows, columns and diagonals are thinned by their sparsities before the entries are sampled.`,
	Args:    cobra.ExactArgs(1),
	Run:     generate.MatrixRun,
}

// generateOneRowCmd represents the onerow command
var generateOneRowCmd = &cobra.Command{
	Use:   "onerow OUTPUT_MTX",
	Short: "A size x size matrix with entries only in row 0",
	Long:  `A size x size matrix whose entries are all in row 0, each present with probability 1-sparsity.`,
	Args:  cobra.ExactArgs(1),
	Run:   generate.OneRowRun,
}

// generateOneColCmd represents the onecol command
var generateOneColCmd = &cobra.Command{
	Use:   "onecol OUTPUT_MTX",
	Short: "A size x size matrix with entries only in column 0",
	Long: `A size x size matrix whose entries are all in column 0. The density variant mirrors onerow,
the inverted variant uses the sparsity as the probability of presence.`,
	Args:  cobra.ExactArgs(1),
	Run:   generate.OneColRun,
}

// generateMultipleColsCmd represents the cols command
var generateMultipleColsCmd = &cobra.Command{
	Use:   "cols OUTPUT_MTX",
	Short: "A rows x cols matrix made of a few long rows",
	Long: `A rows x cols matrix where rows*(1-axis) rows are selected uniformly and each selected row
is filled across every column with probability 1-sparsity.`,
	Args:  cobra.ExactArgs(1),
	Run:   generate.MultipleColsRun,
}

// generateMultipleRowsCmd represents the rows command
var generateMultipleRowsCmd = &cobra.Command{
	Use:   "rows OUTPUT_MTX",
	Short: "A rows x cols matrix made of a few long columns",
	Long: `A rows x cols matrix where cols*(1-axis) columns are selected uniformly and each selected
column is filled down every row with probability 1-sparsity.`,
	Args:  cobra.ExactArgs(1),
	Run:   generate.MultipleRowsRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.PersistentFlags().UintVarP(&generate.MaxNonZeros, "max", "m", 20000, "the maximum number of nonzero entries")
	generateCmd.PersistentFlags().Float64VarP(&generate.NonZeroSparsity, "sparsity", "s", 0.9, "the nonzero sparsity [0, 1]")
	generateCmd.PersistentFlags().Uint64Var(&generate.Seed, "seed", 0, "the random seed; note 0 means a random seed")
	generateCmd.PersistentFlags().BoolVarP(&generate.Verbose, "verbose", "v", false, "enable verbose info")

	generateCmd.AddCommand(generateMatrixCmd)
	generateMatrixCmd.Flags().UintVarP(&generate.Rows, "rows", "r", 100, "the number of rows")
	generateMatrixCmd.Flags().UintVarP(&generate.Cols, "cols", "c", 100, "the number of columns")
	generateMatrixCmd.Flags().Float64Var(&generate.RowSparsity, "row", 0, "the fraction of rows excluded [0, 1]")
	generateMatrixCmd.Flags().Float64Var(&generate.ColSparsity, "col", 0, "the fraction of columns excluded [0, 1]")
	generateMatrixCmd.Flags().Float64Var(&generate.DiagSparsity, "diag", 0, "the fraction of diagonals excluded [0, 1]")
	generateMatrixCmd.Flags().BoolVar(&generate.Symmetric, "symmetric", false, "mirror every entry across the main diagonal")

	generateCmd.AddCommand(generateOneRowCmd)
	generateOneRowCmd.Flags().UintVarP(&generate.Size, "size", "n", 100, "the vector length")

	generateCmd.AddCommand(generateOneColCmd)
	generateOneColCmd.Flags().UintVarP(&generate.Size, "size", "n", 100, "the vector length")
	generateOneColCmd.Flags().StringVar(&generate.Variant, "variant", "density", "the column variant: density or inverted")

	generateCmd.AddCommand(generateMultipleColsCmd)
	generateMultipleColsCmd.Flags().UintVarP(&generate.Rows, "rows", "r", 100, "the number of rows")
	generateMultipleColsCmd.Flags().UintVarP(&generate.Cols, "cols", "c", 100, "the number of columns")
	generateMultipleColsCmd.Flags().Float64VarP(&generate.AxisSparsity, "axis", "a", 0.9, "the fraction of rows left empty [0, 1]")

	generateCmd.AddCommand(generateMultipleRowsCmd)
	generateMultipleRowsCmd.Flags().UintVarP(&generate.Rows, "rows", "r", 100, "the number of rows")
	generateMultipleRowsCmd.Flags().UintVarP(&generate.Cols, "cols", "c", 100, "the number of columns")
	generateMultipleRowsCmd.Flags().Float64VarP(&generate.AxisSparsity, "axis", "a", 0.9, "the fraction of columns left empty [0, 1]")
}

package cmd

import (
	"github.com/nathanhack/matgen/cmd/internal/entry"
	en "github.com/nathanhack/matgen/entry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// entryCmd represents the entry command
var entryCmd = &cobra.Command{
	Use:     "entry",
	Aliases: []string{"e"},
	Short:   "Generates a single multiplication entry",
	Long:    `Generates m1, m2 and their boolean product m1*m2, saves the three matrices into OUTPUT_DIR and prints the record.`,
}

// entryRectangleCmd represents the rectangle command
var entryRectangleCmd = &cobra.Command{
	Use:     "rectangle OUTPUT_DIR",
	Aliases: []string{"rect", "r"},
	Short:   "An (a x b) * (b x c) entry",
	Long:    `An (a x b) * (b x c) entry where both operands are constrained random matrices.`,
	Args:    cobra.ExactArgs(1),
	Run:     entry.RectangleRun,
}

// entrySquareCmd represents the square command
var entrySquareCmd = &cobra.Command{
	Use:     "square OUTPUT_DIR",
	Aliases: []string{"sq", "s"},
	Short:   "An (n x n) * (n x n) entry",
	Long:    `An (n x n) * (n x n) entry where both operands are constrained random matrices.`,
	Args:    cobra.ExactArgs(1),
	Run:     entry.SquareRun,
}

// entryHorizontalVerticalCmd represents the hv command
var entryHorizontalVerticalCmd = &cobra.Command{
	Use:     "hv OUTPUT_DIR",
	Aliases: []string{"horizontal-vertical"},
	Short:   "A single column matrix times a column 0 matrix",
	Long: `Both operands are size x size. Every row of m1 is eligible but its column sparsity is 1, so
its entries fall in a single sampled column; m2 has entries only in column 0.`,
	Args:    cobra.ExactArgs(1),
	Run:     entry.HorizontalVerticalRun,
}

// entryInnerCmd represents the inner command
var entryInnerCmd = &cobra.Command{
	Use:     "inner OUTPUT_DIR",
	Aliases: []string{"i"},
	Short:   "A row 0 matrix times a column 0 matrix",
	Long:    `A size x size matrix with entries only in row 0 times one with entries only in column 0, so the product can only hold (0,0).`,
	Args:    cobra.ExactArgs(1),
	Run:     entry.InnerRun,
}

// entryOuterCmd represents the outer command
var entryOuterCmd = &cobra.Command{
	Use:     "outer OUTPUT_DIR",
	Aliases: []string{"o"},
	Short:   "A column 0 matrix times a row 0 matrix",
	Long:    `A size x size matrix with entries only in column 0 times one with entries only in row 0.`,
	Args:    cobra.ExactArgs(1),
	Run:     entry.OuterRun,
}

// entryExtremeCmd represents the extreme command
var entryExtremeCmd = &cobra.Command{
	Use:     "extreme OUTPUT_DIR",
	Aliases: []string{"x"},
	Short:   "Operands made of a few full rows or columns",
	Long:    `Each size x size operand is randomly a few long rows (m1 parameters) or a few long columns (m2 parameters).`,
	Args:    cobra.ExactArgs(1),
	Run:     entry.ExtremeRun,
}

func fractionFlags(flags *pflag.FlagSet, f *en.Fractions, name string) {
	flags.Float64Var(&f.NonZero, name+"-sparsity", 0.9, "the nonzero sparsity of "+name)
	flags.Float64Var(&f.Row, name+"-row", 0, "the fraction of rows of "+name+" excluded")
	flags.Float64Var(&f.Col, name+"-col", 0, "the fraction of columns of "+name+" excluded")
	flags.Float64Var(&f.Diag, name+"-diag", 0, "the fraction of diagonals of "+name+" excluded")
	flags.BoolVar(&f.Symmetric, name+"-symmetric", false, "mirror the entries of "+name)
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.PersistentFlags().UintVarP(&entry.MaxNonZeros, "max", "m", 20000, "the maximum number of nonzero entries per operand")
	entryCmd.PersistentFlags().Uint64Var(&entry.Seed, "seed", 0, "the random seed; note 0 means a random seed")
	entryCmd.PersistentFlags().BoolVarP(&entry.Verbose, "verbose", "v", false, "enable verbose info")

	entryCmd.AddCommand(entryRectangleCmd)
	entryRectangleCmd.Flags().UintVarP(&entry.M1Rows, "rows", "a", 100, "the number of rows of m1")
	entryRectangleCmd.Flags().UintVarP(&entry.Inner, "inner", "b", 100, "the columns of m1 and rows of m2")
	entryRectangleCmd.Flags().UintVarP(&entry.M2Cols, "cols", "c", 100, "the number of columns of m2")
	fractionFlags(entryRectangleCmd.Flags(), &entry.M1, "m1")
	fractionFlags(entryRectangleCmd.Flags(), &entry.M2, "m2")

	entryCmd.AddCommand(entrySquareCmd)
	entrySquareCmd.Flags().UintVarP(&entry.Size, "size", "n", 100, "the matrix size")
	fractionFlags(entrySquareCmd.Flags(), &entry.M1, "m1")
	fractionFlags(entrySquareCmd.Flags(), &entry.M2, "m2")

	for _, c := range []*cobra.Command{entryHorizontalVerticalCmd, entryInnerCmd, entryOuterCmd} {
		entryCmd.AddCommand(c)
		c.Flags().UintVarP(&entry.Size, "size", "n", 100, "the matrix size")
		c.Flags().Float64Var(&entry.M1.NonZero, "m1-sparsity", 0.9, "the nonzero sparsity of m1")
		c.Flags().Float64Var(&entry.M2.NonZero, "m2-sparsity", 0.9, "the nonzero sparsity of m2")
		c.Flags().StringVar(&entry.Variant, "variant", "density", "the column variant: density or inverted")
	}

	entryCmd.AddCommand(entryExtremeCmd)
	entryExtremeCmd.Flags().UintVarP(&entry.Size, "size", "n", 100, "the matrix size")
	entryExtremeCmd.Flags().Float64Var(&entry.M1.NonZero, "m1-sparsity", 0.9, "the nonzero sparsity of m1")
	entryExtremeCmd.Flags().Float64Var(&entry.M2.NonZero, "m2-sparsity", 0.9, "the nonzero sparsity of m2")
	entryExtremeCmd.Flags().Float64Var(&entry.RowCol1, "m1-axis", 0.9, "the fraction of m1 rows or columns left empty")
	entryExtremeCmd.Flags().Float64Var(&entry.RowCol2, "m2-axis", 0.9, "the fraction of m2 rows or columns left empty")
}

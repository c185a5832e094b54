// Package dataset runs many entry generations with randomly drawn parameters
// and indexes the saved matrices in a CSV file.
package dataset

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/nathanhack/matgen/generator"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("dataset: invalid config")

type Mode string

const (
	Square             Mode = "square"
	Rectangle          Mode = "rectangle"
	InnerProduct       Mode = "inner"
	OuterProduct       Mode = "outer"
	HorizontalVertical Mode = "horizontal-vertical"
	ExtremeCases       Mode = "extreme"
	WiderRange         Mode = "wider-range"
	VectorInner        Mode = "vector-inner"
	VectorOuter        Mode = "vector-outer"
)

var Modes = []Mode{Square, Rectangle, InnerProduct, OuterProduct, HorizontalVertical, ExtremeCases, WiderRange, VectorInner, VectorOuter}

//Range is an inclusive [Low, High] interval.
type Range struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Low, r.High)
}

//Config describes a dataset. Every parameter of an entry is drawn uniformly
// from its list; the wider-range mode instead draws exponents from the ranges:
// size = 10^u and sparsity = 1 - 10^u.
type Config struct {
	Name          string `yaml:"name"`
	OutputDir     string `yaml:"output_dir"`
	CSVPath       string `yaml:"csv_path"`
	Entries       int    `yaml:"entries"`
	MaxNonZeros   int    `yaml:"max_nnz"`
	Mode          Mode   `yaml:"mode"`
	Seed          uint64 `yaml:"seed"`
	Threads       int    `yaml:"threads"`
	ColumnVariant string `yaml:"column_variant"`

	Sizes           []int     `yaml:"sizes"`
	NonZeroSparsity []float64 `yaml:"nnz_sparsity"`
	RowSparsity     []float64 `yaml:"row_sparsity"`
	ColSparsity     []float64 `yaml:"col_sparsity"`
	DiagSparsity    []float64 `yaml:"diag_sparsity"`
	RowColSparsity  []float64 `yaml:"row_col_sparsity"`
	Symmetric       []bool    `yaml:"symmetric"`

	SizeExponent    Range `yaml:"size_exponent"`
	NonZeroExponent Range `yaml:"nnz_exponent"`
	RowExponent     Range `yaml:"row_exponent"`
	ColExponent     Range `yaml:"col_exponent"`
	DiagExponent    Range `yaml:"diag_exponent"`
}

//Default is the general square dataset.
func Default() Config {
	return Config{
		Name:            "matrices",
		OutputDir:       filepath.Join("dataset", "matrices"),
		CSVPath:         filepath.Join("dataset", "csv", "matrices.csv"),
		Entries:         1000,
		MaxNonZeros:     20000,
		Mode:            Square,
		ColumnVariant:   generator.ColumnDensity.String(),
		Sizes:           []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000},
		NonZeroSparsity: []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 0.99},
		RowSparsity:     []float64{0.0, 0.5, 0.9},
		ColSparsity:     []float64{0.0, 0.5, 0.9},
		DiagSparsity:    []float64{0.0, 0.5, 0.9},
		RowColSparsity:  []float64{0.5, 0.7, 0.9, 0.99, 0.999},
		Symmetric:       []bool{true, false},
		SizeExponent:    Range{Low: 2, High: 5},
		NonZeroExponent: Range{Low: -4, High: -1},
		RowExponent:     Range{Low: -4, High: 0},
		ColExponent:     Range{Low: -4, High: 0},
		DiagExponent:    Range{Low: -4, High: 0},
	}
}

//Load reads a YAML config. Fields missing from the file keep their Default value.
// A missing file is not an error: the defaults are returned with a warning.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		logrus.Warnf("config %v not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error while reading config %v: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error while parsing config %v: %w", path, err)
	}
	return cfg, cfg.Validate()
}

//Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}
	return ioutil.WriteFile(path, data, 0644)
}

func (c Config) variant() generator.ColumnVariant {
	v, err := generator.ParseColumnVariant(c.ColumnVariant)
	if err != nil {
		return generator.ColumnDensity
	}
	return v
}

//Validate checks the fields the configured mode draws from.
func (c Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Entries <= 0 {
		return invalid("entries must be > 0 but found %v", c.Entries)
	}
	if c.MaxNonZeros < 0 {
		return invalid("max_nnz must be >= 0 but found %v", c.MaxNonZeros)
	}
	if c.Threads < 0 {
		return invalid("threads must be >= 0 but found %v", c.Threads)
	}
	if c.OutputDir == "" {
		return invalid("output_dir is required")
	}
	if c.ColumnVariant != "" {
		if _, err := generator.ParseColumnVariant(c.ColumnVariant); err != nil {
			return invalid("%v", err)
		}
	}

	sizes := func() error {
		if len(c.Sizes) == 0 {
			return invalid("sizes must not be empty")
		}
		for _, s := range c.Sizes {
			if s <= 0 {
				return invalid("sizes must be > 0 but found %v", s)
			}
		}
		return nil
	}
	fractions := func(name string, values []float64) error {
		if len(values) == 0 {
			return invalid("%v must not be empty", name)
		}
		for _, v := range values {
			if !(0 <= v && v <= 1) {
				return invalid("%v must be in [0, 1] but found %v", name, v)
			}
		}
		return nil
	}
	exponent := func(name string, r Range, max float64) error {
		if r.Low > r.High || r.High > max {
			return invalid("%v must be an increasing range with high <= %v but found %v", name, max, r)
		}
		return nil
	}

	var checks []func() error
	switch c.Mode {
	case Square, Rectangle, VectorInner, VectorOuter:
		checks = []func() error{
			sizes,
			func() error { return fractions("nnz_sparsity", c.NonZeroSparsity) },
			func() error { return fractions("row_sparsity", c.RowSparsity) },
			func() error { return fractions("col_sparsity", c.ColSparsity) },
			func() error { return fractions("diag_sparsity", c.DiagSparsity) },
			func() error {
				if len(c.Symmetric) == 0 {
					return invalid("symmetric must not be empty")
				}
				return nil
			},
		}
	case InnerProduct, OuterProduct, HorizontalVertical:
		checks = []func() error{
			sizes,
			func() error { return fractions("nnz_sparsity", c.NonZeroSparsity) },
		}
	case ExtremeCases:
		checks = []func() error{
			sizes,
			func() error { return fractions("nnz_sparsity", c.NonZeroSparsity) },
			func() error { return fractions("row_col_sparsity", c.RowColSparsity) },
		}
	case WiderRange:
		checks = []func() error{
			func() error { return exponent("size_exponent", c.SizeExponent, 9) },
			func() error { return exponent("nnz_exponent", c.NonZeroExponent, 0) },
			func() error { return exponent("row_exponent", c.RowExponent, 0) },
			func() error { return exponent("col_exponent", c.ColExponent, 0) },
			func() error { return exponent("diag_exponent", c.DiagExponent, 0) },
			func() error {
				if len(c.Symmetric) == 0 {
					return invalid("symmetric must not be empty")
				}
				return nil
			},
		}
	default:
		return invalid("unknown mode %q, expected one of %v", c.Mode, Modes)
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

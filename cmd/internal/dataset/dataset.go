package dataset

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nathanhack/matgen/dataset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Entries  uint
	Threads  uint
	Seed     uint64
	Output   string
	CSVPath  string
	Summary  string
	Progress bool
	Verbose  bool
)

var DatasetRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	cfg, err := dataset.Load(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	// flags override the file
	if cmd.Flags().Changed("entries") {
		cfg.Entries = int(Entries)
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = int(Threads)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = Seed
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = Output
	}
	if cmd.Flags().Changed("csv") {
		cfg.CSVPath = CSVPath
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	summary, err := dataset.Run(ctx, cfg, Progress)
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(summary)

	summaryPath := Summary
	if summaryPath == "" && cfg.CSVPath != "" {
		summaryPath = strings.TrimSuffix(cfg.CSVPath, ".csv") + "_summary.json"
	}
	if summaryPath == "" {
		return
	}
	if err := dataset.SaveSummary(summaryPath, summary); err != nil {
		fmt.Println(err)
	}
}

var Mode string

//InitRun writes the default configuration for a mode so it can be edited.
var InitRun = func(cmd *cobra.Command, args []string) {
	cfg := dataset.Default()
	cfg.Mode = dataset.Mode(Mode)
	cfg.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		return
	}

	if err := dataset.Save(args[0], cfg); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("wrote %v config to %v\n", cfg.Mode, args[0])
}

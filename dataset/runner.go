package dataset

import (
	"context"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/matgen/entry"
	"github.com/nathanhack/matgen/generator"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

//Checkpoint receives each finished record. Calls are serialized.
type Checkpoint func(done int, record entry.Record)

//Generate runs every job of cfg on a pool of cfg.Threads workers and returns
// the records ordered by job index. Job i uses a generator seeded with
// cfg.Seed+i, so its parameters and matrices do not depend on scheduling.
// Jobs not yet started when ctx is cancelled are skipped.
func Generate(ctx context.Context, cfg Config, checkpoint Checkpoint, showProgress bool) ([]entry.Record, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(generator.NewRandom().Rand().Int63())
		logrus.Infof("using seed %v", seed)
	}

	threads := cfg.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(cfg.Entries)
	}

	type indexed struct {
		index  int
		record entry.Record
	}
	results := make([]indexed, 0, cfg.Entries)
	failed := 0
	mux := sync.Mutex{}

	pool := threadpool.NewFixedSize(ctx, threads, cfg.Entries)
	job := func(i int) {
		if ctx.Err() != nil {
			return
		}
		if showProgress {
			defer bar.Increment()
		}

		g := generator.New(seed + uint64(i))
		j := cfg.Draw(g.Rand(), i)
		logrus.Debugf("starting %v", j)

		e, err := entry.Run(g, j.EntryMode())
		if err != nil {
			logrus.Errorf("job %v failed: %v", j, err)
			mux.Lock()
			failed++
			mux.Unlock()
			return
		}

		// save errors are logged by Save and the record is still indexed
		record, _ := entry.Save(cfg.OutputDir, e)

		mux.Lock()
		defer mux.Unlock()
		results = append(results, indexed{i, record})
		if checkpoint != nil {
			checkpoint(len(results), record)
		}
	}

	for i := 0; i < cfg.Entries; i++ {
		tmp := i
		pool.Add(func() { job(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}

	slices.SortFunc(results, func(a, b indexed) int {
		return a.index - b.index
	})
	records := make([]entry.Record, len(results))
	for i, r := range results {
		records[i] = r.record
	}
	return records, failed, ctx.Err()
}

//Run generates the dataset, writes its CSV index to cfg.CSVPath and returns
// the summary. On cancellation the finished part is still written.
func Run(ctx context.Context, cfg Config, showProgress bool) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	records, failed, err := Generate(ctx, cfg, nil, showProgress)
	summary := Summarize(records)
	summary.Name = cfg.Name
	summary.Failed = failed

	if cfg.CSVPath != "" {
		if serr := SaveCSV(cfg.CSVPath, records); serr != nil {
			return summary, serr
		}
		logrus.Infof("wrote %v records to %v", len(records), cfg.CSVPath)
	}
	return summary, err
}

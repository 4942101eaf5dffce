// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWorkers matches the pool size the corpus was originally
	// processed with.
	DefaultWorkers = 12
	// DefaultBatchSize is the number of lines handed to a worker at a time.
	DefaultBatchSize = 32

	// DefaultMaxLineBytes caps the scanner buffer. Some records carry full
	// quote chains and go far past the default 64K token limit. A line over
	// the cap violates the input contract and is a fatal read error, not a
	// skippable record.
	DefaultMaxLineBytes = 32 * 1024 * 1024
)

// Config controls one filtering run.
type Config struct {
	InputPath  string
	OutputPath string
	Workers    int
	BatchSize  int
	// MaxLineBytes bounds a single input line; zero means
	// DefaultMaxLineBytes. Exceeding it aborts the run.
	MaxLineBytes int
	// ShowProgress draws a per-line progress spinner on stderr. Off by
	// default so tests and scripted runs stay quiet.
	ShowProgress bool
}

// Summary is the run report: every input line is counted as processed,
// malformed lines are the processed lines that failed to parse.
type Summary struct {
	Processed int64
	Kept      int64
	Malformed int64
}

// Run streams the input file through a fixed worker pool and writes kept
// lines verbatim to the output file. Records are independent, so workers
// evaluate disjoint line batches with no coordination; the output file is the
// single serialization point and is owned by one writer goroutine. Output
// order across workers is not input order.
//
// Per-record problems are absorbed into the counters. Only resource-level
// errors (open, read, write, flush) abort the run.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = DefaultMaxLineBytes
	}

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("create output: %w", err)
	}

	var bar *progressbar.ProgressBar
	if cfg.ShowProgress {
		bar = progressbar.NewOptions64(-1,
			progressbar.OptionSetDescription("filtering"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSpinnerType(14),
		)
	}

	var processed, keptCount, malformed atomic.Int64
	evaluator := DefaultEvaluator()

	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan [][]byte, cfg.Workers)
	kept := make(chan []byte, cfg.Workers*cfg.BatchSize)

	// Reader: batch lines so workers amortize channel traffic over many
	// cheap evaluations.
	g.Go(func() error {
		defer close(batches)
		sc := bufio.NewScanner(in)
		bufSize := 64 * 1024
		if bufSize > cfg.MaxLineBytes {
			bufSize = cfg.MaxLineBytes
		}
		sc.Buffer(make([]byte, bufSize), cfg.MaxLineBytes)
		batch := make([][]byte, 0, cfg.BatchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			select {
			case batches <- batch:
				batch = make([][]byte, 0, cfg.BatchSize)
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		for sc.Scan() {
			line := make([]byte, len(sc.Bytes()))
			copy(line, sc.Bytes())
			batch = append(batch, line)
			if len(batch) == cfg.BatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read %s: %w", cfg.InputPath, err)
		}
		return flush()
	})

	// Workers: independent pass/fail evaluation, no shared state beyond the
	// counters.
	var workers sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for batch := range batches {
				for _, line := range batch {
					processed.Add(1)
					if bar != nil {
						_ = bar.Add(1)
					}
					d := evaluator.Evaluate(line)
					if d.Malformed {
						malformed.Add(1)
						continue
					}
					if !d.Keep {
						continue
					}
					keptCount.Add(1)
					select {
					case kept <- line:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		workers.Wait()
		close(kept)
		return nil
	})

	// Writer: sole owner of the output stream.
	g.Go(func() error {
		w := bufio.NewWriterSize(out, 1<<20)
		for line := range kept {
			if _, err := w.Write(line); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
		return nil
	})

	runErr := g.Wait()
	if bar != nil {
		_ = bar.Finish()
	}
	if closeErr := out.Close(); runErr == nil && closeErr != nil {
		runErr = fmt.Errorf("close output: %w", closeErr)
	}
	if runErr != nil {
		return Summary{}, runErr
	}
	return Summary{
		Processed: processed.Load(),
		Kept:      keptCount.Load(),
		Malformed: malformed.Load(),
	}, nil
}

// Package batch fans independent per-file operations out over a bounded
// worker pool.
//
// Each file's encrypt-or-decrypt cycle is self-contained, so batches share
// no mutable state beyond the aggregate counters here. A pool size of 1
// degrades to strictly sequential processing.
package batch

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// Failure records one file that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Summary aggregates the outcome of a batch run.
type Summary struct {
	Succeeded int64
	Failed    int64
	Failures  []Failure
}

// Process applies fn to every path using at most workers concurrent
// operations. It always drains the whole batch; per-file errors are
// collected in the summary rather than aborting the run.
func Process(paths []string, workers int, fn func(path string) error) (*Summary, error) {
	if workers <= 0 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		failed    atomic.Int64
		mu        sync.Mutex
		failures  []Failure
	)

	for _, path := range paths {
		path := path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := fn(path); err != nil {
				failed.Add(1)
				mu.Lock()
				failures = append(failures, Failure{Path: path, Err: err})
				mu.Unlock()
				return
			}
			succeeded.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
			mu.Lock()
			failures = append(failures, Failure{Path: path, Err: submitErr})
			mu.Unlock()
		}
	}

	wg.Wait()

	return &Summary{
		Succeeded: succeeded.Load(),
		Failed:    failed.Load(),
		Failures:  failures,
	}, nil
}

package stats

import (
	"context"
	"sync"

	"github.com/airbloc/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/hhstat/vacstat/vacmetric"
)

var log = logger.New("vacstat.stats")

// ErrTimedOut is returned when an aggregation run exceeds its deadline.
// A timed-out run never returns partial results.
var ErrTimedOut = errors.New("statistics aggregation timed out")

// NewWorkerPool aggregates chunks on a bounded pool of share-nothing
// workers and merges their results on the owning goroutine. Workers only
// read their own assigned chunk and return an immutable ChunkStats; the
// merge is commutative, so chunk completion order never affects the
// outcome. Any worker failure fails the whole run.
func NewWorkerPool(ctx context.Context, chunkPaths []string, profName string, optionalOpt ...Options) (Statistics, error) {
	opt := loadOptions(optionalOpt)

	jobs := make(chan string)
	results := make(chan *ChunkStats, len(chunkPaths))
	failures := make(chan error, len(chunkPaths))
	rowsProcessed := atomic.NewInt64(0)

	var wg sync.WaitGroup
	for i := 0; i < opt.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				vacmetric.RunningWorkersGauge.Inc()
				chunk, err := AggregateChunk(path, profName, opt.Rates, opt.RatePolicy)
				vacmetric.RunningWorkersGauge.Dec()
				if err != nil {
					failures <- errors.Wrapf(err, "chunk %s", path)
					continue
				}
				rowsProcessed.Add(int64(chunk.TotalCount))
				vacmetric.ChunksCompletedCounter.WithLabelValues("pool").Inc()
				results <- chunk
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range chunkPaths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)
	close(failures)

	merged := NewChunkStats()
	for chunk := range results {
		merged = merged.Merge(chunk)
	}

	var failure *multierror.Error
	for err := range failures {
		failure = multierror.Append(failure, err)
	}
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimedOut
		}
		return nil, errors.Wrap(err, "aggregation canceled")
	}
	if err := failure.ErrorOrNil(); err != nil {
		return nil, errors.Wrap(err, "worker failure")
	}

	vacmetric.RowsProcessedCounter.WithLabelValues("pool").Add(float64(rowsProcessed.Load()))
	log.Verbose("Merged {} chunks ({} rows) on {} workers", len(chunkPaths), rowsProcessed.Load(), opt.Concurrency)
	return &statistics{profName: profName, merged: merged}, nil
}

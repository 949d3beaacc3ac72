package stats

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hhstat/vacstat/internal/errgroup"
	"github.com/hhstat/vacstat/vacmetric"
)

// NewFutures dispatches one task per chunk under a panic-recovering group
// and merges results as they complete. Unlike the bounded pool, every
// chunk gets its own goroutine; the first failure cancels the remaining
// tasks and fails the whole run.
func NewFutures(ctx context.Context, chunkPaths []string, profName string, optionalOpt ...Options) (Statistics, error) {
	opt := loadOptions(optionalOpt)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimedOut
		}
		return nil, errors.Wrap(err, "aggregation canceled")
	}

	wg, taskCtx := errgroup.WithContext(ctx)
	results := make(chan *ChunkStats, len(chunkPaths))
	for _, path := range chunkPaths {
		path := path
		wg.Go(func() error {
			chunk, err := AggregateChunk(path, profName, opt.Rates, opt.RatePolicy)
			if err != nil {
				return errors.Wrapf(err, "chunk %s", path)
			}
			select {
			case results <- chunk:
			case <-taskCtx.Done():
				return taskCtx.Err()
			}
			vacmetric.ChunksCompletedCounter.WithLabelValues("futures").Inc()
			return nil
		})
	}
	err := wg.Wait()
	close(results)

	// The caller's deadline wins over individual task outcomes: a run
	// that outlived its deadline times out even when every task managed
	// to report a result.
	if cerr := ctx.Err(); cerr != nil {
		if errors.Is(cerr, context.DeadlineExceeded) {
			return nil, ErrTimedOut
		}
		return nil, errors.Wrap(cerr, "aggregation canceled")
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimedOut
		}
		return nil, errors.Wrap(err, "worker failure")
	}

	merged := NewChunkStats()
	for chunk := range results {
		merged = merged.Merge(chunk)
	}
	vacmetric.RowsProcessedCounter.WithLabelValues("futures").Add(float64(merged.TotalCount))
	return &statistics{profName: profName, merged: merged}, nil
}

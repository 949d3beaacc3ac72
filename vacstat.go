// Package vacstat computes aggregate salary and volume statistics over a
// corpus of job-posting records: mean salary and record count per year and
// per city, for the whole corpus and for a named profession subset. The
// corpus is partitioned into per-year chunks and aggregated by one of
// several interchangeable strategies that all produce identical results.
package vacstat

import (
	"context"

	"github.com/airbloc/logger"
	"github.com/pkg/errors"

	"github.com/hhstat/vacstat/internal/util"
	"github.com/hhstat/vacstat/partition"
	"github.com/hhstat/vacstat/stats"
)

var log = logger.New("vacstat")

// Compute runs statistics aggregation over the CSV corpus at csvPath for
// the given profession filter. Chunked strategies partition the corpus by
// year first; single-pass strategies scan the unpartitioned file directly.
func Compute(ctx context.Context, csvPath, profName string, optionalOpt ...Options) (stats.Statistics, error) {
	opt := DefaultOptions()
	if len(optionalOpt) > 0 {
		opt = optionalOpt[0]
		opt.SetDefaults()
	}

	if opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}

	runID := util.GenerateID("run-")
	log.Verbose("Starting {} over {} (strategy: {}, profession: {})", runID, csvPath, opt.Strategy, profName)

	statsOpt := opt.statsOptions()
	switch opt.Strategy {
	case StrategySequential:
		return stats.NewSequential(csvPath, profName, statsOpt)

	case StrategyColumnar:
		return stats.NewColumnar(csvPath, profName, statsOpt)

	case StrategyPool, StrategyFutures:
		separated, err := partition.ByYear(csvPath, opt.DateTimeColumn, opt.PartitionDir)
		if err != nil {
			return nil, errors.Wrap(err, "partition by year")
		}
		log.Info("Partitioned {} into {} chunks under {}", csvPath, len(separated.ChunkPaths), opt.PartitionDir)
		if opt.Strategy == StrategyFutures {
			return stats.NewFutures(ctx, separated.ChunkPaths, profName, statsOpt)
		}
		return stats.NewWorkerPool(ctx, separated.ChunkPaths, profName, statsOpt)

	default:
		return nil, errors.Errorf("unknown strategy %q", opt.Strategy)
	}
}

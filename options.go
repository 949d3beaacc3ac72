package vacstat

import (
	"runtime"
	"time"

	"github.com/creasty/defaults"

	"github.com/hhstat/vacstat/stats"
	"github.com/hhstat/vacstat/vacancy"
)

// Strategy selects the aggregation execution strategy.
type Strategy string

const (
	// StrategySequential scans the whole corpus in one pass on the
	// calling goroutine.
	StrategySequential Strategy = "sequential"

	// StrategyPool aggregates per-year chunks on a bounded worker pool.
	StrategyPool Strategy = "pool"

	// StrategyFutures dispatches one task per chunk.
	StrategyFutures Strategy = "futures"

	// StrategyColumnar computes statistics via bulk columnar group-by.
	StrategyColumnar Strategy = "columnar"
)

type Options struct {
	Strategy Strategy `default:"pool"`

	// Concurrency is the number of chunk workers for the pool strategy.
	// By default, it will be number of CPUs in the machine.
	Concurrency int `default:"-"`

	// PartitionDir is the scratch directory holding per-year chunks. It
	// is destroyed and recreated on every partitioning run.
	PartitionDir string `default:"year_separated"`

	// DateTimeColumn is the source column the partition year is taken
	// from.
	DateTimeColumn string `default:"published_at"`

	// SkipUnknownCurrency drops records whose currency has no exchange
	// rate instead of failing the run.
	SkipUnknownCurrency bool `default:"false"`

	// Timeout bounds a whole aggregation run. Zero waits indefinitely.
	Timeout time.Duration `default:"0"`

	// Rates converts salaries to the reference currency. Defaults to the
	// built-in static table.
	Rates vacancy.RateProvider `default:"-"`
}

func DefaultOptions() (o Options) {
	o.SetDefaults()
	return
}

// SetDefaults fills zero-valued fields with their defaults. Fields the
// caller set explicitly are left untouched.
func (o *Options) SetDefaults() {
	if err := defaults.Set(o); err != nil {
		panic(err)
	}
	if defaults.CanUpdate(o.Concurrency) {
		o.Concurrency = runtime.NumCPU()
	}
	if o.Rates == nil {
		o.Rates = vacancy.DefaultRates
	}
}

func (o *Options) statsOptions() stats.Options {
	policy := stats.FailOnUnknownCurrency
	if o.SkipUnknownCurrency {
		policy = stats.SkipUnknownCurrency
	}
	return stats.Options{
		Rates:       o.Rates,
		RatePolicy:  policy,
		Concurrency: o.Concurrency,
	}
}

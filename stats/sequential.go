package stats

import (
	"github.com/hhstat/vacstat/vacmetric"
)

// NewSequential computes statistics in one pass over the unpartitioned
// corpus on the calling goroutine. It is the baseline every parallel
// strategy must match, and the cheapest option for small corpora.
func NewSequential(path, profName string, optionalOpt ...Options) (Statistics, error) {
	opt := loadOptions(optionalOpt)

	chunk, err := AggregateChunk(path, profName, opt.Rates, opt.RatePolicy)
	if err != nil {
		return nil, err
	}
	vacmetric.RowsProcessedCounter.WithLabelValues("sequential").Add(float64(chunk.TotalCount))
	return &statistics{profName: profName, merged: chunk}, nil
}

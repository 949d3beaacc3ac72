// Package stats is the statistics-aggregation engine: it folds vacancy
// records into mergeable partial aggregates, merges them deterministically
// regardless of chunking or worker completion order, and exposes the
// report-ready views shared by every execution strategy.
package stats

// AvgCounter is a mergeable incremental mean accumulator.
type AvgCounter struct {
	sum   float64
	count int
}

// NewAvgCounter seeds a counter with the given values.
func NewAvgCounter(values ...float64) *AvgCounter {
	c := &AvgCounter{}
	for _, v := range values {
		c.Add(v)
	}
	return c
}

// Add folds one value into the mean.
func (c *AvgCounter) Add(v float64) {
	c.sum += v
	c.count++
}

func (c *AvgCounter) Sum() float64 {
	return c.sum
}

// Len returns the number of folded values.
func (c *AvgCounter) Len() int {
	return c.count
}

// Value returns the current mean, or 0 for an empty counter.
func (c *AvgCounter) Value() float64 {
	if c.count == 0 {
		return 0
	}
	return c.sum / float64(c.count)
}

// Merge returns a new counter equivalent to folding both operands' inputs
// directly. The operation is commutative and associative, which is what
// makes parallel partial-state merging safe; merging with an empty counter
// yields a counter value-equal to the other operand.
func (c *AvgCounter) Merge(other *AvgCounter) *AvgCounter {
	merged := &AvgCounter{sum: c.sum, count: c.count}
	if other != nil {
		merged.sum += other.sum
		merged.count += other.count
	}
	return merged
}

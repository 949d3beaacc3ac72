package stats

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hhstat/vacstat/source"
	"github.com/hhstat/vacstat/vacancy"
)

// RatePolicy decides what happens to a record whose currency has no
// exchange rate.
type RatePolicy int

const (
	// FailOnUnknownCurrency aborts the whole aggregation run.
	FailOnUnknownCurrency RatePolicy = iota

	// SkipUnknownCurrency drops the record entirely: it contributes to
	// neither salary nor count aggregates, so salary and share views stay
	// computed over the same record population.
	SkipUnknownCurrency
)

// ChunkStats is the partial aggregate produced by a single pass over one
// chunk. Instances are produced by exactly one worker and consumed exactly
// once by the merge step.
type ChunkStats struct {
	SalariesByYear     map[int]*AvgCounter
	CountsByYear       map[int]int
	ProfSalariesByYear map[int]*AvgCounter
	ProfCountsByYear   map[int]int
	CitySalaries       map[string]*AvgCounter
	TotalCount         int
}

func NewChunkStats() *ChunkStats {
	return &ChunkStats{
		SalariesByYear:     make(map[int]*AvgCounter),
		CountsByYear:       make(map[int]int),
		ProfSalariesByYear: make(map[int]*AvgCounter),
		ProfCountsByYear:   make(map[int]int),
		CitySalaries:       make(map[string]*AvgCounter),
	}
}

// Fold updates the aggregate with one record whose salary has already been
// converted to the reference currency.
func (s *ChunkStats) Fold(v *vacancy.Vacancy, salary float64, profName string) {
	s.fold(v.Year(), v.AreaName, v.Name, salary, profName)
}

func (s *ChunkStats) fold(year int, city, title string, salary float64, profName string) {
	addValue(s.SalariesByYear, year, salary)
	s.CountsByYear[year]++

	addValue(s.CitySalaries, city, salary)
	s.TotalCount++

	if !containsProf(title, profName) {
		return
	}
	addValue(s.ProfSalariesByYear, year, salary)
	s.ProfCountsByYear[year]++
}

// Merge returns a new ChunkStats equivalent to aggregating both operands'
// records in one pass. Every counter map merges through AvgCounter.Merge
// and every count map sums, so the fold is commutative and associative for
// any chunking of the corpus, year-disjoint or not.
func (s *ChunkStats) Merge(other *ChunkStats) *ChunkStats {
	merged := &ChunkStats{
		SalariesByYear:     mergeCounters(s.SalariesByYear, other.SalariesByYear),
		CountsByYear:       mergeCounts(s.CountsByYear, other.CountsByYear),
		ProfSalariesByYear: mergeCounters(s.ProfSalariesByYear, other.ProfSalariesByYear),
		ProfCountsByYear:   mergeCounts(s.ProfCountsByYear, other.ProfCountsByYear),
		CitySalaries:       mergeCounters(s.CitySalaries, other.CitySalaries),
		TotalCount:         s.TotalCount + other.TotalCount,
	}
	return merged
}

// containsProf is the profession filter: a raw case-sensitive substring
// test against the vacancy title.
func containsProf(title, profName string) bool {
	return strings.Contains(title, profName)
}

func addValue[K comparable](counters map[K]*AvgCounter, key K, value float64) {
	if c, ok := counters[key]; ok {
		c.Add(value)
		return
	}
	counters[key] = NewAvgCounter(value)
}

func mergeCounters[K comparable](a, b map[K]*AvgCounter) map[K]*AvgCounter {
	merged := make(map[K]*AvgCounter, len(a)+len(b))
	for k, c := range a {
		merged[k] = c.Merge(nil)
	}
	for k, c := range b {
		if existing, ok := merged[k]; ok {
			merged[k] = existing.Merge(c)
		} else {
			merged[k] = c.Merge(nil)
		}
	}
	return merged
}

func mergeCounts[K comparable](a, b map[K]int) map[K]int {
	merged := make(map[K]int, len(a)+len(b))
	for k, n := range a {
		merged[k] = n
	}
	for k, n := range b {
		merged[k] += n
	}
	return merged
}

// AggregateChunk computes ChunkStats for one chunk file in a single
// sequential pass. Rows with a mismatched field count are skipped with the
// same tolerance the partitioner applies, keeping a whole-file pass
// equivalent to the chunked passes; any other parse failure is fatal for
// the run.
func AggregateChunk(path, profName string, rates vacancy.RateProvider, policy RatePolicy) (*ChunkStats, error) {
	chunk := NewChunkStats()
	err := source.ForEachRow(path, func(row source.Row) error {
		v, err := vacancy.ParseRow(row)
		if err != nil {
			return errors.Wrapf(err, "parse record in %s", path)
		}
		salary, err := v.Salary.AvgAmount(rates, v.PublishedAt)
		if err != nil {
			if policy == SkipUnknownCurrency && vacancy.IsUnknownCurrency(err) {
				return nil
			}
			return errors.Wrapf(err, "convert salary in %s", path)
		}
		chunk.Fold(v, salary, profName)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

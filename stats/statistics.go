package stats

import (
	"time"
)

// Statistics is the common contract every aggregation strategy implements.
// All strategies must produce numerically identical results for the same
// input corpus, whatever the chunking or worker count.
type Statistics interface {
	ProfName() string

	// VacanciesCount is the total number of records folded into the
	// aggregate. It is the denominator of the 1% city-inclusion rule.
	VacanciesCount() int

	SalariesByYear() map[int]int
	CountsByYear() map[int]int

	// ProfSalariesByYear and ProfCountsByYear cover the records matching
	// the profession filter. When no record matches anywhere in the
	// corpus, they substitute {currentYear: 0} instead of an empty map.
	ProfSalariesByYear() map[int]int
	ProfCountsByYear() map[int]int

	TopSalariesByCity() []CitySalary
	TopCitiesShares() []CityShare

	// TopPercentShares is TopCitiesShares scaled to percent, rounded to
	// digits decimals when digits >= 0.
	TopPercentShares(digits int) []CityShare

	Report() *Report
}

// Report is the immutable report-ready aggregate handed to renderers.
type Report struct {
	ProfName           string       `json:"prof_name"`
	SalariesByYear     map[int]int  `json:"salaries_by_year"`
	CountsByYear       map[int]int  `json:"counts_by_year"`
	ProfSalariesByYear map[int]int  `json:"prof_salaries_by_year"`
	ProfCountsByYear   map[int]int  `json:"prof_counts_by_year"`
	TopSalariesByCity  []CitySalary `json:"top_salaries_by_city"`
	TopCitiesShares    []CityShare  `json:"top_cities_shares"`
}

// statistics is the merged state shared by every strategy. Strategies
// differ only in how they produce the merged ChunkStats.
type statistics struct {
	profName string
	merged   *ChunkStats
}

func (s *statistics) ProfName() string {
	return s.profName
}

func (s *statistics) VacanciesCount() int {
	return s.merged.TotalCount
}

func (s *statistics) SalariesByYear() map[int]int {
	return intMeans(s.merged.SalariesByYear)
}

func (s *statistics) CountsByYear() map[int]int {
	return copyCounts(s.merged.CountsByYear)
}

func (s *statistics) ProfSalariesByYear() map[int]int {
	if len(s.merged.ProfSalariesByYear) == 0 {
		return map[int]int{time.Now().Year(): 0}
	}
	return intMeans(s.merged.ProfSalariesByYear)
}

func (s *statistics) ProfCountsByYear() map[int]int {
	if len(s.merged.ProfCountsByYear) == 0 {
		return map[int]int{time.Now().Year(): 0}
	}
	return copyCounts(s.merged.ProfCountsByYear)
}

func (s *statistics) TopSalariesByCity() []CitySalary {
	return topSalariesByCity(s.merged.CitySalaries, s.merged.TotalCount)
}

func (s *statistics) TopCitiesShares() []CityShare {
	return topCitiesShares(s.merged.CitySalaries, s.merged.TotalCount)
}

func (s *statistics) TopPercentShares(digits int) []CityShare {
	shares := s.TopCitiesShares()
	out := make([]CityShare, len(shares))
	for i, share := range shares {
		v := 100 * share.Share
		if digits >= 0 {
			v = round(v, digits)
		}
		out[i] = CityShare{City: share.City, Share: v}
	}
	return out
}

func (s *statistics) Report() *Report {
	return &Report{
		ProfName:           s.profName,
		SalariesByYear:     s.SalariesByYear(),
		CountsByYear:       s.CountsByYear(),
		ProfSalariesByYear: s.ProfSalariesByYear(),
		ProfCountsByYear:   s.ProfCountsByYear(),
		TopSalariesByCity:  s.TopSalariesByCity(),
		TopCitiesShares:    s.TopCitiesShares(),
	}
}

// intMeans truncates each counter's mean to whole units.
func intMeans(counters map[int]*AvgCounter) map[int]int {
	out := make(map[int]int, len(counters))
	for year, c := range counters {
		out[year] = int(c.Value())
	}
	return out
}

func copyCounts(counts map[int]int) map[int]int {
	out := make(map[int]int, len(counts))
	for year, n := range counts {
		out[year] = n
	}
	return out
}

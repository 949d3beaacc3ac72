package stats

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

const topCities = 10

// CitySalary is one entry of the ranked city-salary view.
type CitySalary struct {
	City   string `json:"city"`
	Salary int    `json:"salary"`
}

// CityShare is one entry of the ranked city-share view.
type CityShare struct {
	City  string  `json:"city"`
	Share float64 `json:"share"`
}

// qualifyingCities returns cities whose record count reaches 1% of the
// total, in lexicographic order. The threshold comparison is inclusive; a
// zero total keeps every city (the threshold is a comparison, not a
// division). Lexicographic base order makes the ranked views deterministic
// for every strategy and chunking.
func qualifyingCities(counters map[string]*AvgCounter, total int) []string {
	onePercent := float64(total) / 100

	cities := lo.Keys(counters)
	sort.Strings(cities)

	qualified := make([]string, 0, len(cities))
	for _, city := range cities {
		if float64(counters[city].Len()) >= onePercent {
			qualified = append(qualified, city)
		}
	}
	return qualified
}

// topSalariesByCity ranks qualifying cities by mean salary, descending,
// truncated to ten entries. Means are truncated to whole units; ties keep
// the lexicographic base order (stable sort).
func topSalariesByCity(counters map[string]*AvgCounter, total int) []CitySalary {
	cities := qualifyingCities(counters, total)
	entries := make([]CitySalary, len(cities))
	for i, city := range cities {
		entries[i] = CitySalary{City: city, Salary: int(counters[city].Value())}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Salary > entries[j].Salary
	})
	if len(entries) > topCities {
		entries = entries[:topCities]
	}
	return entries
}

// topCitiesShares ranks qualifying cities by record-count share, rounded
// to four decimals, descending, truncated to ten entries.
func topCitiesShares(counters map[string]*AvgCounter, total int) []CityShare {
	cities := qualifyingCities(counters, total)
	entries := make([]CityShare, len(cities))
	for i, city := range cities {
		share := 0.0
		if total > 0 {
			share = round(float64(counters[city].Len())/float64(total), 4)
		}
		entries[i] = CityShare{City: city, Share: share}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Share > entries[j].Share
	})
	if len(entries) > topCities {
		entries = entries[:topCities]
	}
	return entries
}

func round(v float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(v*factor) / factor
}

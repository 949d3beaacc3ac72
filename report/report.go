// Package report renders a computed statistics aggregate as console
// tables, spreadsheets and JSON documents.
package report

import (
	"sort"

	"github.com/thoas/go-funk"

	"github.com/hhstat/vacstat/stats"
)

// reportYears returns the union of year keys across all four year maps in
// ascending order. The union matters because the profession maps may hold
// only the current-year sentinel.
func reportYears(r *stats.Report) []int {
	set := make(map[int]struct{})
	for _, m := range []map[int]int{
		r.SalariesByYear,
		r.CountsByYear,
		r.ProfSalariesByYear,
		r.ProfCountsByYear,
	} {
		for year := range m {
			set[year] = struct{}{}
		}
	}
	years := funk.Keys(set).([]int)
	sort.Ints(years)
	return years
}

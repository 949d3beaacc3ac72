package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hhstat/vacstat/stats"
)

// RenderTable writes the report to w as three console tables: year
// statistics, city salaries and city shares.
func RenderTable(w io.Writer, r *stats.Report) {
	yt := table.NewWriter()
	yt.SetOutputMirror(w)
	yt.SetTitle("Statistics by year")
	yt.AppendHeader(table.Row{
		"Year",
		"Average salary",
		"Count",
		"Average salary: " + r.ProfName,
		"Count: " + r.ProfName,
	})
	for _, year := range reportYears(r) {
		yt.AppendRow(table.Row{
			year,
			r.SalariesByYear[year],
			r.CountsByYear[year],
			r.ProfSalariesByYear[year],
			r.ProfCountsByYear[year],
		})
	}
	yt.Render()

	ct := table.NewWriter()
	ct.SetOutputMirror(w)
	ct.SetTitle("Salary by city")
	ct.AppendHeader(table.Row{"City", "Average salary"})
	for _, entry := range r.TopSalariesByCity {
		ct.AppendRow(table.Row{entry.City, entry.Salary})
	}
	ct.Render()

	st := table.NewWriter()
	st.SetOutputMirror(w)
	st.SetTitle("Share by city")
	st.AppendHeader(table.Row{"City", "Share"})
	for _, entry := range r.TopCitiesShares {
		st.AppendRow(table.Row{entry.City, fmt.Sprintf("%.2f%%", 100*entry.Share)})
	}
	st.Render()
}

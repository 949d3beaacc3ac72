package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hhstat/vacstat/stats"
)

func sampleReport() *stats.Report {
	return &stats.Report{
		ProfName:           "Engineer",
		SalariesByYear:     map[int]int{2020: 225, 2021: 50},
		CountsByYear:       map[int]int{2020: 2, 2021: 1},
		ProfSalariesByYear: map[int]int{2020: 225},
		ProfCountsByYear:   map[int]int{2020: 2},
		TopSalariesByCity: []stats.CitySalary{
			{City: "A", Salary: 225},
			{City: "B", Salary: 50},
		},
		TopCitiesShares: []stats.CityShare{
			{City: "A", Share: 0.6667},
			{City: "B", Share: 0.3333},
		},
	}
}

func TestReportYears(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, []int{2020, 2021}, reportYears(r))

	// the profession sentinel year joins the union
	r.ProfCountsByYear = map[int]int{2026: 0}
	assert.Equal(t, []int{2020, 2021, 2026}, reportYears(r))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, `"prof_name": "Engineer"`)
	assert.Contains(t, out, `"salaries_by_year"`)
	assert.Contains(t, out, `"2020": 225`)
	assert.Contains(t, out, `"share": 0.6667`)

	var decoded stats.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), &decoded)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Statistics by year")
	// go-pretty upper-cases header cells by default
	assert.Contains(t, out, "AVERAGE SALARY: ENGINEER")
	assert.Contains(t, out, "Salary by city")
	assert.Contains(t, out, "Share by city")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "33.33%")

	// 2020 row carries both the global and the profession aggregates
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "2020") {
			continue
		}
		assert.Contains(t, line, "225")
		assert.Contains(t, line, "2")
		return
	}
	t.Fatal("no 2020 row rendered")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Year statistics", "City statistics"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Year", cell("Year statistics", "A1"))
	assert.Equal(t, "Count: Engineer", cell("Year statistics", "E1"))
	assert.Equal(t, "2020", cell("Year statistics", "A2"))
	assert.Equal(t, "225", cell("Year statistics", "B2"))
	assert.Equal(t, "2021", cell("Year statistics", "A3"))
	assert.Equal(t, "50", cell("Year statistics", "B3"))

	assert.Equal(t, "A", cell("City statistics", "A2"))
	assert.Equal(t, "225", cell("City statistics", "B2"))
	assert.Equal(t, "A", cell("City statistics", "D2"))
	assert.Equal(t, "0.6667", cell("City statistics", "E2"))
}

package vacancy

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow() map[string]string {
	return map[string]string{
		ColumnName:         "Senior Engineer",
		ColumnSalaryFrom:   "100",
		ColumnSalaryTo:     "200.5",
		ColumnCurrency:     "RUR",
		ColumnAreaName:     "Moscow",
		ColumnPublishedAt:  "2022-07-05T20:45:58+0300",
		ColumnDescription:  "Builds things",
		ColumnKeySkills:    "Go\nSQL",
		ColumnExperienceID: "between3And6",
		ColumnPremium:      "True",
		ColumnEmployerName: "ACME",
		ColumnSalaryGross:  "False",
	}
}

func TestParseRow(t *testing.T) {
	v, err := ParseRow(fullRow())
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer", v.Name)
	assert.Equal(t, 100, v.Salary.From)
	assert.Equal(t, 200, v.Salary.To, "fractional amounts are truncated")
	assert.Equal(t, "RUR", v.Salary.Currency)
	require.NotNil(t, v.Salary.Gross)
	assert.False(t, *v.Salary.Gross)
	assert.Equal(t, "Moscow", v.AreaName)
	assert.Equal(t, 2022, v.Year())
	assert.Equal(t, []string{"Go", "SQL"}, v.KeySkills)
	require.NotNil(t, v.Premium)
	assert.True(t, *v.Premium)
	assert.Equal(t, "ACME", v.EmployerName)
}

func TestParseRow_OptionalFieldsAbsent(t *testing.T) {
	row := map[string]string{
		ColumnName:        "Cook",
		ColumnSalaryFrom:  "50",
		ColumnSalaryTo:    "50",
		ColumnCurrency:    "RUR",
		ColumnAreaName:    "Kazan",
		ColumnPublishedAt: "2021-01-02T03:04:05+0300",
	}
	v, err := ParseRow(row)
	require.NoError(t, err)
	assert.Nil(t, v.Premium)
	assert.Nil(t, v.Salary.Gross)
	assert.Nil(t, v.KeySkills)
	assert.Empty(t, v.Description)
}

func TestParseRow_RequiredFieldFailures(t *testing.T) {
	breakages := map[string]string{
		ColumnName:        "",
		ColumnSalaryFrom:  "",
		ColumnSalaryTo:    "abc",
		ColumnCurrency:    "",
		ColumnAreaName:    "",
		ColumnPublishedAt: "yesterday",
	}
	for column, bad := range breakages {
		row := fullRow()
		row[column] = bad
		_, err := ParseRow(row)
		require.Error(t, err, "column %q", column)
		assert.True(t, errors.Is(err, ErrRecordParse), "column %q should wrap ErrRecordParse", column)
	}
}

func TestParseRow_BadOptionalBool(t *testing.T) {
	row := fullRow()
	row[ColumnPremium] = "yes"
	_, err := ParseRow(row)
	assert.True(t, errors.Is(err, ErrRecordParse))
}

func TestSalary_AvgAmount(t *testing.T) {
	at := time.Now()

	s := Salary{From: 100, To: 200, Currency: "RUR"}
	amount, err := s.AvgAmount(DefaultRates, at)
	require.NoError(t, err)
	assert.Equal(t, 150.0, amount)

	s = Salary{From: 100, To: 200, Currency: "USD"}
	amount, err = s.AvgAmount(DefaultRates, at)
	require.NoError(t, err)
	assert.InDelta(t, 150*60.66, amount, 1e-9)
}

func TestMatchesProfession(t *testing.T) {
	v := &Vacancy{Name: "Senior Engineer"}
	assert.True(t, v.MatchesProfession("Engineer"))
	assert.True(t, v.MatchesProfession("ngine"), "raw substring match, whole words not required")
	assert.False(t, v.MatchesProfession("engineer"), "matching is case-sensitive")
	assert.False(t, v.MatchesProfession("Cook"))
}

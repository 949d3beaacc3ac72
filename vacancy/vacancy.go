// Package vacancy holds the record model of the statistics engine: a single
// job posting parsed from a tabular source, its salary fork, and the
// exchange-rate lookup used to convert salaries to the reference currency.
package vacancy

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Column names of the source table. The first six are required on every row;
// the rest are optional.
const (
	ColumnName        = "name"
	ColumnSalaryFrom  = "salary_from"
	ColumnSalaryTo    = "salary_to"
	ColumnCurrency    = "salary_currency"
	ColumnAreaName    = "area_name"
	ColumnPublishedAt = "published_at"

	ColumnDescription  = "description"
	ColumnKeySkills    = "key_skills"
	ColumnExperienceID = "experience_id"
	ColumnPremium      = "premium"
	ColumnEmployerName = "employer_name"
	ColumnSalaryGross  = "salary_gross"
)

// ErrRecordParse marks a row that fails required-field parsing.
var ErrRecordParse = errors.New("record parse failed")

// Salary is the salary fork attached to a vacancy. Conversion to the
// reference currency is deferred until a RateProvider is supplied.
type Salary struct {
	From     int
	To       int
	Currency string
	Gross    *bool
}

// AvgAmount returns the midpoint of the fork converted to the reference
// currency with the rate effective at the given time.
func (s Salary) AvgAmount(rates RateProvider, at time.Time) (float64, error) {
	rate, err := rates.Rate(s.Currency, at)
	if err != nil {
		return 0, err
	}
	avg := float64(s.From+s.To) / 2
	return avg * rate, nil
}

// Vacancy is a single job-posting record. It is treated as immutable once
// parsed.
type Vacancy struct {
	Name        string
	Salary      Salary
	AreaName    string
	PublishedAt time.Time

	Description  string
	KeySkills    []string
	ExperienceID string
	Premium      *bool
	EmployerName string
}

// Year returns the publication year.
func (v *Vacancy) Year() int {
	return v.PublishedAt.Year()
}

// MatchesProfession reports whether the vacancy title contains profName.
// The test is a raw case-sensitive substring match.
func (v *Vacancy) MatchesProfession(profName string) bool {
	return strings.Contains(v.Name, profName)
}

// ParseRow builds a Vacancy from a header-keyed row. A missing or empty
// required column, or a required value that fails parsing, yields an error
// wrapping ErrRecordParse.
func ParseRow(row map[string]string) (*Vacancy, error) {
	name := row[ColumnName]
	if name == "" {
		return nil, errors.Wrapf(ErrRecordParse, "required column %q is empty", ColumnName)
	}
	areaName := row[ColumnAreaName]
	if areaName == "" {
		return nil, errors.Wrapf(ErrRecordParse, "required column %q is empty", ColumnAreaName)
	}
	currency := row[ColumnCurrency]
	if currency == "" {
		return nil, errors.Wrapf(ErrRecordParse, "required column %q is empty", ColumnCurrency)
	}

	from, err := parseAmount(row, ColumnSalaryFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseAmount(row, ColumnSalaryTo)
	if err != nil {
		return nil, err
	}
	gross, err := parseOptionalBool(row, ColumnSalaryGross)
	if err != nil {
		return nil, err
	}

	publishedAt, err := ParseDateTime(row[ColumnPublishedAt])
	if err != nil {
		return nil, errors.Wrapf(ErrRecordParse, "column %q: %v", ColumnPublishedAt, err)
	}
	premium, err := parseOptionalBool(row, ColumnPremium)
	if err != nil {
		return nil, err
	}

	return &Vacancy{
		Name: name,
		Salary: Salary{
			From:     from,
			To:       to,
			Currency: currency,
			Gross:    gross,
		},
		AreaName:     areaName,
		PublishedAt:  publishedAt,
		Description:  row[ColumnDescription],
		KeySkills:    listSkills(row[ColumnKeySkills]),
		ExperienceID: row[ColumnExperienceID],
		Premium:      premium,
		EmployerName: row[ColumnEmployerName],
	}, nil
}

// parseAmount parses a salary bound. Amounts may carry a fractional part in
// the source; they are truncated to whole units.
func parseAmount(row map[string]string, column string) (int, error) {
	raw := row[column]
	if raw == "" {
		return 0, errors.Wrapf(ErrRecordParse, "required column %q is empty", column)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrRecordParse, "column %q: %v", column, err)
	}
	return int(f), nil
}

func parseOptionalBool(row map[string]string, column string) (*bool, error) {
	switch row[column] {
	case "":
		return nil, nil
	case "True":
		v := true
		return &v, nil
	case "False":
		v := false
		return &v, nil
	default:
		return nil, errors.Wrapf(ErrRecordParse, "column %q: bad bool value %q", column, row[column])
	}
}

// listSkills splits a newline-separated skill cell into a list.
func listSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

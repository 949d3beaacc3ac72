package stats

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/hhstat/vacstat/source"
	"github.com/hhstat/vacstat/vacancy"
	"github.com/hhstat/vacstat/vacmetric"
)

// NewColumnar computes the same contract as the row-based strategies via
// bulk grouped aggregation over a column-wise load of the corpus. Each
// column is parsed in one batch pass, then a single grouping pass folds the
// parsed columns. The arithmetic is shared with the row path, so integer
// truncation and rounding results are identical by construction.
func NewColumnar(path, profName string, optionalOpt ...Options) (Statistics, error) {
	opt := loadOptions(optionalOpt)

	table, err := source.ReadTable(path)
	if err != nil {
		return nil, err
	}

	years, err := parseYearColumn(table)
	if err != nil {
		return nil, err
	}
	salaries, keep, err := parseSalaryColumns(table, opt)
	if err != nil {
		return nil, err
	}
	names, err := requireColumn(table, vacancy.ColumnName)
	if err != nil {
		return nil, err
	}
	cities, err := requireColumn(table, vacancy.ColumnAreaName)
	if err != nil {
		return nil, err
	}

	merged := NewChunkStats()
	for i := 0; i < table.Rows; i++ {
		// Required-field validation applies to every row, including
		// rows the unknown-currency policy drops, matching the row
		// strategies where parsing precedes the rate lookup.
		if names[i] == "" {
			return nil, errors.Wrapf(vacancy.ErrRecordParse, "required column %q is empty", vacancy.ColumnName)
		}
		if cities[i] == "" {
			return nil, errors.Wrapf(vacancy.ErrRecordParse, "required column %q is empty", vacancy.ColumnAreaName)
		}
		if !keep[i] {
			continue
		}
		merged.fold(years[i], cities[i], names[i], salaries[i], profName)
	}

	vacmetric.RowsProcessedCounter.WithLabelValues("columnar").Add(float64(merged.TotalCount))
	return &statistics{profName: profName, merged: merged}, nil
}

func requireColumn(table *source.Table, name string) ([]string, error) {
	column := table.Column(name)
	if column == nil {
		return nil, errors.Wrapf(vacancy.ErrRecordParse, "required column %q missing", name)
	}
	return column, nil
}

func parseYearColumn(table *source.Table) ([]int, error) {
	raw, err := requireColumn(table, vacancy.ColumnPublishedAt)
	if err != nil {
		return nil, err
	}
	years := make([]int, len(raw))
	for i, value := range raw {
		t, err := vacancy.ParseDateTime(value)
		if err != nil {
			return nil, errors.Wrapf(vacancy.ErrRecordParse, "column %q: %v", vacancy.ColumnPublishedAt, err)
		}
		years[i] = t.Year()
	}
	return years, nil
}

// parseSalaryColumns batch-parses the salary fork and converts to the
// reference currency. keep masks out records dropped by the
// unknown-currency policy.
func parseSalaryColumns(table *source.Table, opt Options) (salaries []float64, keep []bool, err error) {
	from, err := parseAmountColumn(table, vacancy.ColumnSalaryFrom)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseAmountColumn(table, vacancy.ColumnSalaryTo)
	if err != nil {
		return nil, nil, err
	}
	currencies, err := requireColumn(table, vacancy.ColumnCurrency)
	if err != nil {
		return nil, nil, err
	}
	publishedAt, err := requireColumn(table, vacancy.ColumnPublishedAt)
	if err != nil {
		return nil, nil, err
	}

	salaries = make([]float64, table.Rows)
	keep = make([]bool, table.Rows)
	for i := 0; i < table.Rows; i++ {
		if currencies[i] == "" {
			return nil, nil, errors.Wrapf(vacancy.ErrRecordParse, "required column %q is empty", vacancy.ColumnCurrency)
		}
		at, err := vacancy.ParseDateTime(publishedAt[i])
		if err != nil {
			return nil, nil, errors.Wrapf(vacancy.ErrRecordParse, "column %q: %v", vacancy.ColumnPublishedAt, err)
		}
		salary := vacancy.Salary{From: from[i], To: to[i], Currency: currencies[i]}
		amount, err := salary.AvgAmount(opt.Rates, at)
		if err != nil {
			if opt.RatePolicy == SkipUnknownCurrency && vacancy.IsUnknownCurrency(err) {
				continue
			}
			return nil, nil, errors.Wrap(err, "convert salary")
		}
		salaries[i] = amount
		keep[i] = true
	}
	return salaries, keep, nil
}

func parseAmountColumn(table *source.Table, name string) ([]int, error) {
	raw, err := requireColumn(table, name)
	if err != nil {
		return nil, err
	}
	amounts := make([]int, len(raw))
	for i, value := range raw {
		if value == "" {
			return nil, errors.Wrapf(vacancy.ErrRecordParse, "required column %q is empty", name)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(vacancy.ErrRecordParse, "column %q: %v", name, err)
		}
		amounts[i] = int(f)
	}
	return amounts, nil
}

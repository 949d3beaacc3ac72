package report

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/hhstat/vacstat/stats"
)

const (
	yearSheet = "Year statistics"
	citySheet = "City statistics"
)

// WriteXLSX writes the report to path as a two-sheet workbook.
func WriteXLSX(path string, r *stats.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", yearSheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	yearHeader := []interface{}{
		"Year",
		"Average salary",
		"Count",
		"Average salary: " + r.ProfName,
		"Count: " + r.ProfName,
	}
	if err := writeRow(f, yearSheet, 1, yearHeader); err != nil {
		return err
	}
	for i, year := range reportYears(r) {
		row := []interface{}{
			year,
			r.SalariesByYear[year],
			r.CountsByYear[year],
			r.ProfSalariesByYear[year],
			r.ProfCountsByYear[year],
		}
		if err := writeRow(f, yearSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(citySheet); err != nil {
		return errors.Wrap(err, "create sheet")
	}
	if err := writeRow(f, citySheet, 1, []interface{}{"City", "Average salary", "", "City", "Share"}); err != nil {
		return err
	}
	for i, entry := range r.TopSalariesByCity {
		if err := writeRow(f, citySheet, i+2, []interface{}{entry.City, entry.Salary}); err != nil {
			return err
		}
	}
	for i, entry := range r.TopCitiesShares {
		if err := writeCells(f, citySheet, 4, i+2, []interface{}{entry.City, entry.Share}); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "save workbook")
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	return writeCells(f, sheet, 1, row, values)
}

func writeCells(f *excelize.File, sheet string, startColumn, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(startColumn+i, row)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return errors.Wrapf(err, "set cell %s", cell)
		}
	}
	return nil
}

package source

import (
	"io"

	"github.com/pkg/errors"
)

// Table is a whole file loaded column-wise, for bulk grouped aggregation.
type Table struct {
	Header  []string
	Columns map[string][]string
	Rows    int
}

// Column returns the named column, or nil when the source has no such
// column.
func (t *Table) Column(name string) []string {
	return t.Columns[name]
}

// ReadTable loads an entire CSV file into column slices. Rows with a
// mismatched field count are skipped on load, mirroring the row-path
// tolerance, so both paths see the same record set.
func ReadTable(path string) (*Table, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	table := &Table{
		Header:  src.Header,
		Columns: make(map[string][]string, len(src.Header)),
	}
	rows := 0
	for {
		record, err := src.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "read csv record")
		}
		rows++
		if len(record) != len(src.Header) {
			continue
		}
		for i, column := range src.Header {
			table.Columns[column] = append(table.Columns[column], record[i])
		}
		table.Rows++
	}
	if rows == 0 {
		return nil, ErrEmptyInput
	}
	return table, nil
}

// Package source reads tabular record sources. The only concrete backend is
// CSV; rows are exposed either as raw records (for the partitioner, which
// applies its own malformed-row policy) or as header-keyed maps (for the
// aggregators).
package source

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when a source contains no data rows.
var ErrEmptyInput = errors.New("source has no data rows")

// Row is a single record keyed by column name.
type Row map[string]string

// Source streams records of a single CSV file.
type Source struct {
	Header []string

	file *os.File
	r    *csv.Reader
}

// Open opens a CSV file and reads its header row. A UTF-8 BOM on the first
// header cell is stripped.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open source")
	}
	r := csv.NewReader(bufio.NewReader(file))
	// Field-count mismatches are a policy decision of the caller,
	// not a read error.
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		file.Close()
		if err == io.EOF {
			return nil, ErrEmptyInput
		}
		return nil, errors.Wrap(err, "read csv header")
	}
	header = append([]string(nil), header...)
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	return &Source{Header: header, file: file, r: r}, nil
}

// Next returns the next raw record. The returned slice is only valid until
// the following call. io.EOF marks the end of the file.
func (s *Source) Next() ([]string, error) {
	return s.r.Read()
}

// RowMap converts a raw record into a header-keyed Row. It returns false
// when the record's field count does not match the header.
func (s *Source) RowMap(record []string) (Row, bool) {
	if len(record) != len(s.Header) {
		return nil, false
	}
	row := make(Row, len(record))
	for i, column := range s.Header {
		row[column] = record[i]
	}
	return row, true
}

func (s *Source) Close() error {
	return s.file.Close()
}

// ForEachRow streams every well-formed row of the file through fn. Rows
// with a mismatched field count are silently skipped. ErrEmptyInput is
// returned when the file holds no data rows at all.
func ForEachRow(path string, fn func(Row) error) error {
	src, err := Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	rows := 0
	for {
		record, err := src.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return errors.Wrap(err, "read csv record")
		}
		rows++
		row, ok := src.RowMap(record)
		if !ok {
			continue
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	if rows == 0 {
		return ErrEmptyInput
	}
	return nil
}

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vacancies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpen(t *testing.T) {
	path := writeFile(t, "name,city\nEngineer,Moscow\n")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"name", "city"}, src.Header)
}

func TestOpen_StripsBOM(t *testing.T) {
	path := writeFile(t, "\uFEFFname,city\nEngineer,Moscow\n")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"name", "city"}, src.Header)
}

func TestOpen_EmptyFile(t *testing.T) {
	path := writeFile(t, "")
	_, err := Open(path)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRowMap(t *testing.T) {
	path := writeFile(t, "name,city\nEngineer,Moscow\n")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	row, ok := src.RowMap([]string{"Engineer", "Moscow"})
	require.True(t, ok)
	assert.Equal(t, Row{"name": "Engineer", "city": "Moscow"}, row)

	_, ok = src.RowMap([]string{"Engineer"})
	assert.False(t, ok)
}

func TestForEachRow(t *testing.T) {
	path := writeFile(t, "name,city\nEngineer,Moscow\nbroken\nCook,Kazan\n")

	var names []string
	err := ForEachRow(path, func(row Row) error {
		names = append(names, row["name"])
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineer", "Cook"}, names, "malformed row must be skipped")
}

func TestForEachRow_HeaderOnly(t *testing.T) {
	path := writeFile(t, "name,city\n")
	err := ForEachRow(path, func(Row) error { return nil })
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestForEachRow_PropagatesCallbackError(t *testing.T) {
	path := writeFile(t, "name,city\nEngineer,Moscow\n")
	boom := errors.New("boom")
	err := ForEachRow(path, func(Row) error { return boom })
	assert.True(t, errors.Is(err, boom))
}

func TestReadTable(t *testing.T) {
	path := writeFile(t, "name,city\nEngineer,Moscow\nshort\nCook,Kazan\n")
	table, err := ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Rows)
	assert.Equal(t, []string{"Engineer", "Cook"}, table.Column("name"))
	assert.Equal(t, []string{"Moscow", "Kazan"}, table.Column("city"))
	assert.Nil(t, table.Column("salary"))
}

func TestReadTable_HeaderOnly(t *testing.T) {
	path := writeFile(t, "name,city\n")
	_, err := ReadTable(path)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

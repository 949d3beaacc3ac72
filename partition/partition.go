// Package partition splits a flat record source into chunk files consumed
// by the parallel aggregation strategies. The primary chunking is by
// publication year; block and column-hash chunkings exist for workloads
// (and tests) that need an arbitrary repartition of the same corpus.
package partition

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/airbloc/logger"
	"github.com/pkg/errors"
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/hhstat/vacstat/source"
	"github.com/hhstat/vacstat/vacancy"
)

var log = logger.New("vacstat.partition")

// ErrColumnNotFound is returned when a column required for partitioning is
// missing from the source header. It is raised before any output file is
// created.
var ErrColumnNotFound = errors.New("column not found in header")

// Separated is the result of a partitioning run. MainPath keeps the
// original unpartitioned file: a single-pass global scan over it can be
// cheaper than merging per-chunk partials.
type Separated struct {
	MainPath   string
	ChunkPaths []string
}

// ByYear splits the CSV at path into one chunk per publication year found
// in datetimeColumn. Each chunk carries the header plus that year's rows in
// original order; rows whose field count does not match the header are
// silently dropped. outDir is scratch space: it is destroyed and recreated
// on every run. Chunk paths are ordered by ascending year.
func ByYear(path, datetimeColumn, outDir string) (*Separated, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	columnID := columnIndex(src.Header, datetimeColumn)
	if columnID < 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "datetime column %q", datetimeColumn)
	}

	return separate(src, path, outDir, strconv.Itoa, func(record []string) (int, error) {
		t, err := vacancy.ParseDateTime(record[columnID])
		if err != nil {
			return 0, errors.Wrapf(err, "column %q", datetimeColumn)
		}
		return t.Year(), nil
	})
}

// ByBlocks splits the CSV at path into fixed-size chunks of rowsPerChunk
// well-formed rows each, preserving row order.
func ByBlocks(path string, rowsPerChunk int, outDir string) (*Separated, error) {
	if rowsPerChunk <= 0 {
		return nil, errors.Errorf("rows per chunk must be positive, got %d", rowsPerChunk)
	}
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	written := 0
	name := func(block int) string { return fmt.Sprintf("block%d", block) }
	return separate(src, path, outDir, name, func([]string) (int, error) {
		block := written / rowsPerChunk
		written++
		return block, nil
	})
}

// ByColumnHash splits the CSV at path into n shards keyed by the FNV-1a
// hash of the named column's value. Rows with equal column values always
// land in the same shard.
func ByColumnHash(path, column string, n int, outDir string) (*Separated, error) {
	if n <= 0 {
		return nil, errors.Errorf("shard count must be positive, got %d", n)
	}
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	columnID := columnIndex(src.Header, column)
	if columnID < 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "hash column %q", column)
	}

	name := func(shard int) string { return fmt.Sprintf("shard%d", shard) }
	return separate(src, path, outDir, name, func(record []string) (int, error) {
		return int(fnv1a.HashString64(record[columnID]) % uint64(n)), nil
	})
}

func columnIndex(header []string, column string) int {
	for i, name := range header {
		if name == column {
			return i
		}
	}
	return -1
}

type chunkWriter struct {
	file *os.File
	w    *csv.Writer
}

// separate streams the source into chunk files keyed by assign's result.
// Chunk files are created lazily and named by inserting the chunk key into
// the source filename stem.
func separate(src *source.Source, path, outDir string, name func(int) string,
	assign func(record []string) (int, error)) (*Separated, error) {
	if err := os.RemoveAll(outDir); err != nil {
		return nil, errors.Wrap(err, "clear partition dir")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create partition dir")
	}

	writers := make(map[int]*chunkWriter)
	closeAll := func() {
		for _, cw := range writers {
			cw.w.Flush()
			cw.file.Close()
		}
	}

	rows, dropped := 0, 0
	for {
		record, err := src.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			closeAll()
			return nil, errors.Wrap(err, "read csv record")
		}
		if len(record) != len(src.Header) {
			dropped++
			continue
		}
		key, err := assign(record)
		if err != nil {
			closeAll()
			return nil, err
		}

		cw, ok := writers[key]
		if !ok {
			file, err := os.Create(chunkPath(outDir, path, name(key)))
			if err != nil {
				closeAll()
				return nil, errors.Wrap(err, "create chunk")
			}
			cw = &chunkWriter{file: file, w: csv.NewWriter(file)}
			writers[key] = cw
			if err := cw.w.Write(src.Header); err != nil {
				closeAll()
				return nil, errors.Wrap(err, "write chunk header")
			}
		}
		if err := cw.w.Write(record); err != nil {
			closeAll()
			return nil, errors.Wrap(err, "write chunk record")
		}
		rows++
	}

	if rows+dropped == 0 {
		return nil, source.ErrEmptyInput
	}

	keys := make([]int, 0, len(writers))
	for key, cw := range writers {
		cw.w.Flush()
		if err := cw.w.Error(); err != nil {
			closeAll()
			return nil, errors.Wrap(err, "flush chunk")
		}
		if err := cw.file.Close(); err != nil {
			return nil, errors.Wrap(err, "close chunk")
		}
		keys = append(keys, key)
	}
	sort.Ints(keys)

	chunkPaths := make([]string, len(keys))
	for i, key := range keys {
		chunkPaths[i] = chunkPath(outDir, path, name(key))
	}
	if dropped > 0 {
		log.Verbose("Dropped {} malformed rows out of {} while partitioning {}", dropped, rows+dropped, path)
	}
	return &Separated{MainPath: path, ChunkPaths: chunkPaths}, nil
}

// chunkPath inserts a chunk suffix into the source filename stem:
// vacancies.csv -> <outDir>/vacancies_2022.csv.
func chunkPath(outDir, srcPath, suffix string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(outDir, fmt.Sprintf("%s_%s%s", stem, suffix, ext))
}

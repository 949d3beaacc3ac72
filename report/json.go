package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/hhstat/vacstat/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON writes the report to w as an indented JSON document.
func WriteJSON(w io.Writer, r *stats.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

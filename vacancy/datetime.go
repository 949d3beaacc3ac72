package vacancy

import (
	"time"

	"github.com/pkg/errors"
)

// Accepted timestamp layouts: ISO-8601 with a numeric offset, with and
// without a colon in the offset.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05-07:00",
}

// ParseDateTime parses a timestamp like "2022-07-05T20:45:58+0300".
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("malformed datetime %q", s)
}

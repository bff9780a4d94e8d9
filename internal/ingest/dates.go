package ingest

import (
	"errors"
	"fmt"
	"time"

	"gamerental-backend/internal/domain"
)

var (
	// ErrUnrecognizedDateFormat is returned when a date string matches none of
	// the supported field-order permutations.
	ErrUnrecognizedDateFormat = errors.New("unrecognized date format")
	// ErrUnsupportedDateType is returned when the date value is neither a
	// string nor a time.Time.
	ErrUnsupportedDateType = errors.New("date must be a string or a time value")
)

// dateLayouts are the supported day/month/year permutations over "/" and "-"
// separators. The first layout that parses wins.
var dateLayouts = []string{
	"02/01/2006",
	"02/2006/01",
	"2006/02/01",
	"01/02/2006",
	"01/2006/02",
	"2006/01/02",
	"01-02-2006",
	"02-2006-01",
	"2006-02-01",
	"02-01-2006",
	"01-2006-02",
	"2006-01-02",
}

// NormalizeDate canonicalizes a rental date to DD-MM-YYYY. String inputs are
// tried against each supported layout in order; time values are formatted
// directly.
func NormalizeDate(value any) (string, error) {
	switch v := value.(type) {
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format(domain.DateLayout), nil
			}
		}
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedDateFormat, v)
	case time.Time:
		return v.Format(domain.DateLayout), nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrUnsupportedDateType, value)
	}
}

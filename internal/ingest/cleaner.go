package ingest

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a required ingestion field is empty.
var ErrMissingField = errors.New("missing required field")

// customerIDLength is the only accepted customer id size.
const customerIDLength = 4

type dedupeKey struct {
	gameID     string
	start      string
	end        string
	customerID string
}

// Cleaner validates raw rental records and assigns sequential rental indices
// to the ones it accepts, starting at 1. Duplicate detection spans the whole
// batch the Cleaner has seen.
type Cleaner struct {
	seen      map[dedupeKey]struct{}
	nextIndex int64
}

func NewCleaner() *Cleaner {
	return &Cleaner{
		seen:      make(map[dedupeKey]struct{}),
		nextIndex: 1,
	}
}

// Clean runs the validation pipeline on one raw record and returns a tagged
// outcome. The checks mirror the admission order: missing fields, customer id
// shape, in-batch duplicates, then date normalization.
func (c *Cleaner) Clean(raw RawRecord) Outcome {
	if err := checkMissingFields(raw); err != nil {
		return rejected(raw, "missing required field", err)
	}

	if len(raw.CustomerID) != customerIDLength {
		return rejected(raw, "invalid customer id length",
			fmt.Errorf("customer id must be %d characters, got %d", customerIDLength, len(raw.CustomerID)))
	}

	key := dedupeKey{raw.GameID, raw.RentalStart, raw.RentalEnd, raw.CustomerID}
	if _, ok := c.seen[key]; ok {
		return rejected(raw, "duplicate record", nil)
	}

	start, err := NormalizeDate(raw.RentalStart)
	if err != nil {
		return rejected(raw, "invalid rental start date", err)
	}

	end := ""
	if raw.RentalEnd != "" {
		end, err = NormalizeDate(raw.RentalEnd)
		if err != nil {
			return rejected(raw, "invalid rental end date", err)
		}
	}

	c.seen[key] = struct{}{}
	rec := CleanRecord{
		RentalIndex: c.nextIndex,
		GameID:      raw.GameID,
		StartDate:   start,
		EndDate:     end,
		CustomerID:  raw.CustomerID,
	}
	c.nextIndex++
	return accepted(rec)
}

func checkMissingFields(raw RawRecord) error {
	switch {
	case raw.GameID == "":
		return fmt.Errorf("%w: game_id", ErrMissingField)
	case raw.RentalStart == "":
		return fmt.Errorf("%w: rental_start", ErrMissingField)
	case raw.CustomerID == "":
		return fmt.Errorf("%w: customer_id", ErrMissingField)
	}
	return nil
}

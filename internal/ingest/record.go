package ingest

import "gamerental-backend/internal/domain"

// RawRecord is one unvalidated line of the rental history stream.
type RawRecord struct {
	GameID      string
	RentalStart string
	RentalEnd   string
	CustomerID  string
	Line        int    // 1-based line number in the source, header included
	Raw         string // original line, kept for reject reporting
}

// CleanRecord is an accepted rental history entry with its assigned index
// and normalized dates.
type CleanRecord struct {
	RentalIndex int64
	GameID      string
	StartDate   string
	EndDate     string // empty for an open rental
	CustomerID  string
}

// Record converts the cleaned entry into its paired domain rows.
func (c CleanRecord) Record() (domain.RentalRecord, domain.RentalPeriod) {
	return domain.RentalRecord{
			RentalIndex: c.RentalIndex,
			CustomerID:  c.CustomerID,
			GameID:      c.GameID,
		}, domain.RentalPeriod{
			RentalIndex: c.RentalIndex,
			StartDate:   c.StartDate,
			EndDate:     c.EndDate,
		}
}

// Rejection records why a raw line was dropped from the batch. Dropped
// records are always reported, never silently discarded.
type Rejection struct {
	Line   int
	Raw    string
	Reason string
	Err    error
}

// Outcome is the tagged result of cleaning one raw record.
type Outcome struct {
	Accepted  bool
	Record    CleanRecord // set when Accepted
	Rejection Rejection   // set when !Accepted
}

func accepted(rec CleanRecord) Outcome {
	return Outcome{Accepted: true, Record: rec}
}

func rejected(raw RawRecord, reason string, err error) Outcome {
	return Outcome{Rejection: Rejection{Line: raw.Line, Raw: raw.Raw, Reason: reason, Err: err}}
}

package domain

// DateLayout is the canonical Go layout for rental dates (DD-MM-YYYY).
// Every date persisted by this system is normalized to it.
const DateLayout = "02-01-2006"

// RentalRecord links a customer to a game copy under a unique, strictly
// increasing rental index. Records are created once and never mutated.
type RentalRecord struct {
	RentalIndex int64  `json:"rental_index"`
	CustomerID  string `json:"customer_id"`
	GameID      string `json:"game_id"`
}

// RentalPeriod tracks how long the copy of a rental record was out.
// An empty EndDate means the rental is still open and the copy is out.
// EndDate is written exactly once, when the copy is returned.
type RentalPeriod struct {
	RentalIndex int64  `json:"rental_index"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Open reports whether the period has not been closed by a return yet.
func (p RentalPeriod) Open() bool {
	return p.EndDate == ""
}

// OpenRentalAnomaly flags a game copy with more than one open rental period,
// a violation of the single-open-period invariant.
type OpenRentalAnomaly struct {
	GameID    string `json:"game_id"`
	OpenCount int    `json:"open_count"`
}

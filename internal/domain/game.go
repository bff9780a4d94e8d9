package domain

// AvailabilityStatus describes whether a game copy can currently be rented out.
type AvailabilityStatus string

const (
	GameAvailable AvailabilityStatus = "AVAILABLE"
	GameHiredOut  AvailabilityStatus = "HIRED_OUT"
	// GameMultipleOpenRentals marks a data-integrity violation: more than one
	// rental period is open for the same copy at the same time. The copy is
	// still treated as unavailable.
	GameMultipleOpenRentals AvailabilityStatus = "MULTIPLE_OPEN_RENTALS"
)

// Unavailable reports whether the status means the copy is out on loan.
func (s AvailabilityStatus) Unavailable() bool {
	return s != GameAvailable
}

// Game is one rentable physical copy. Catalogue attributes are owned by the
// external catalogue tables; the core only reads them.
type Game struct {
	GameID             string `json:"game_id"`
	Title              string `json:"title"`
	Platform           string `json:"platform"`
	Genre              string `json:"genre"`
	PurchasePriceCents int32  `json:"purchase_price_cents"`
	PurchaseDate       string `json:"purchase_date"`
}

// GameAvailability is a search result row: a catalogue copy annotated with
// whether it can be hired out right now.
type GameAvailability struct {
	GameID   string             `json:"game_id"`
	Title    string             `json:"title"`
	Platform string             `json:"platform"`
	Genre    string             `json:"genre"`
	Status   AvailabilityStatus `json:"status"`
}

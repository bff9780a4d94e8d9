package repository

import (
	"context"

	"gamerental-backend/internal/domain"
)

type GameRepository interface {
	Exists(ctx context.Context, gameID string) (bool, error)
	Search(ctx context.Context, title, platform string) ([]domain.Game, error)
}

type RentalRepository interface {
	// OpenPeriodCount counts open rental periods for a game copy.
	OpenPeriodCount(ctx context.Context, gameID string) (int, error)
	// CountOpenByCustomer counts a customer's active rentals across all games.
	CountOpenByCustomer(ctx context.Context, customerID string) (int, error)
	// IssueRental atomically assigns the next rental index and inserts the
	// paired record and open period. Availability is re-validated inside the
	// same transaction; domain.ErrGameUnavailable is returned when the copy
	// was taken between the caller's check and the insert.
	IssueRental(ctx context.Context, customerID, gameID, startDate string) (int64, error)
	// CloseOpenPeriods sets end_date on every open period for the game and
	// returns how many were closed.
	CloseOpenPeriods(ctx context.Context, gameID, endDate string) (int64, error)
	// LoadHistory bulk-inserts a cleaned ingestion batch as one transaction.
	LoadHistory(ctx context.Context, records []domain.RentalRecord, periods []domain.RentalPeriod) error
	// FindOpenRentalAnomalies lists game ids holding more than one open period.
	FindOpenRentalAnomalies(ctx context.Context) ([]domain.OpenRentalAnomaly, error)
}

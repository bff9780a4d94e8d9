package service

import (
	"context"
	"io"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/ingest"
)

type AvailabilityService interface {
	// Resolve reports whether a game copy is currently out on loan, flagging
	// copies with more than one open period as an anomaly.
	Resolve(ctx context.Context, gameID string) (domain.AvailabilityStatus, error)
}

type RentalService interface {
	// Rent runs admission control and, when every check passes, issues a new
	// rental. The returned string is a customer-facing outcome message;
	// errors are reserved for infrastructure failures.
	Rent(ctx context.Context, customerID, gameID string) (string, error)
	// Return closes every open rental period for the game copy.
	Return(ctx context.Context, gameID string) (string, error)
}

type GameService interface {
	// SearchAvailable looks up catalogue copies by title and platform and
	// annotates each with its current availability.
	SearchAvailable(ctx context.Context, title, platform string) ([]domain.GameAvailability, error)
}

type IngestService interface {
	// LoadRentalHistory cleans a raw rental history stream and loads the
	// accepted records into storage as one batch.
	LoadRentalHistory(ctx context.Context, r io.Reader) (*ingest.BatchReport, error)
}

// SubscriptionDirectory is the external subscription collaborator as seen by
// admission control.
type SubscriptionDirectory interface {
	Check(customerID string) domain.SubscriptionStatus
	Get(customerID string) (domain.CustomerSubscription, bool)
}

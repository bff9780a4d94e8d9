package domain

import "errors"

var (
	// ErrGameNotFound is returned when a game id is not present in the catalogue.
	ErrGameNotFound = errors.New("game not found")
	// ErrCustomerNotFound is returned when a customer id has no directory entry.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrGameUnavailable is returned when issuance re-validation inside the
	// transaction finds the copy already out on loan.
	ErrGameUnavailable = errors.New("game is not available")
	// ErrUnknownSubscriptionType is returned when a subscription type has no
	// configured rental limit.
	ErrUnknownSubscriptionType = errors.New("unknown subscription type")
)

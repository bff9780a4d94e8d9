package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository"
	"gamerental-backend/internal/subscription"
)

type rentalService struct {
	gameRepo     repository.GameRepository
	rentalRepo   repository.RentalRepository
	availability AvailabilityService
	subs         SubscriptionDirectory

	// issueMu serializes rental issuance. Index assignment is a
	// read-then-write sequence; the repository transaction re-validates, but
	// requests are queued here so concurrent issuances never interleave.
	issueMu sync.Mutex
}

func NewRentalService(
	gameRepo repository.GameRepository,
	rentalRepo repository.RentalRepository,
	availability AvailabilityService,
	subs SubscriptionDirectory,
) RentalService {
	return &rentalService{
		gameRepo:     gameRepo,
		rentalRepo:   rentalRepo,
		availability: availability,
		subs:         subs,
	}
}

func unavailableMessage(gameID string) string {
	return fmt.Sprintf("Game Id %s is currently rented out to another customer.", gameID)
}

// admissionReason maps a subscription status to its customer-facing reason.
// Only Active passes.
func admissionReason(status domain.SubscriptionStatus) (bool, string) {
	switch status {
	case domain.SubscriptionActive:
		return true, ""
	case domain.SubscriptionInactive:
		return false, "Customer has no active subscription plan."
	default:
		return false, "No record of customer having an account."
	}
}

func (s *rentalService) Rent(ctx context.Context, customerID, gameID string) (string, error) {
	s.issueMu.Lock()
	defer s.issueMu.Unlock()

	status, err := s.availability.Resolve(ctx, gameID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve availability for game %s: %w", gameID, err)
	}
	available := !status.Unavailable()

	eligible, reason := admissionReason(s.subs.Check(customerID))

	switch {
	case available && eligible:
		return s.issue(ctx, customerID, gameID)

	case !available && eligible:
		return unavailableMessage(gameID), nil

	case available && !eligible:
		return reason, nil

	default:
		return strings.TrimSuffix(reason, ".") +
			fmt.Sprintf(", and Game Id %s is currently rented out to another customer.", gameID), nil
	}
}

// issue runs the rental-limit check and the paired insert. The caller holds
// issueMu and has already admitted the customer and seen the game available.
func (s *rentalService) issue(ctx context.Context, customerID, gameID string) (string, error) {
	entry, ok := s.subs.Get(customerID)
	if !ok {
		return "", fmt.Errorf("subscription entry vanished for customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}
	limit, err := subscription.RentalLimit(entry.SubscriptionType)
	if err != nil {
		return "", err
	}

	active, err := s.rentalRepo.CountOpenByCustomer(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("failed to count active rentals for customer %s: %w", customerID, err)
	}
	if active+1 > limit {
		return fmt.Sprintf("Customer %s has too many active rentals currently.", customerID), nil
	}

	today := time.Now().Format(domain.DateLayout)
	rentalIndex, err := s.rentalRepo.IssueRental(ctx, customerID, gameID, today)
	if errors.Is(err, domain.ErrGameUnavailable) {
		// Lost the copy between the availability check and the insert.
		return unavailableMessage(gameID), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to issue rental: %w", err)
	}

	logger.Info("Rental issued", "rental_index", rentalIndex, "customer_id", customerID, "game_id", gameID)
	return fmt.Sprintf("Game Id %s successfully rented out to customer %s.", gameID, customerID), nil
}

func (s *rentalService) Return(ctx context.Context, gameID string) (string, error) {
	exists, err := s.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return "", fmt.Errorf("failed to look up game %s: %w", gameID, err)
	}
	if !exists {
		return fmt.Sprintf("Game Id %s does not exist in the rental catalogue, please double check the game id.", gameID), nil
	}

	status, err := s.availability.Resolve(ctx, gameID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve availability for game %s: %w", gameID, err)
	}
	if status == domain.GameAvailable {
		return fmt.Sprintf("Game Id %s is currently available for hire, please double check the game id.", gameID), nil
	}

	// The anomaly case is closed alongside the normal one: every open period
	// for the copy gets today's date. Resolve already logged the violation.
	today := time.Now().Format(domain.DateLayout)
	closed, err := s.rentalRepo.CloseOpenPeriods(ctx, gameID, today)
	if err != nil {
		return "", fmt.Errorf("failed to close rental periods for game %s: %w", gameID, err)
	}

	logger.Info("Game returned", "game_id", gameID, "periods_closed", closed)
	return fmt.Sprintf("Game Id %s successfully returned.", gameID), nil
}

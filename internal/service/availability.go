package service

import (
	"context"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository"
)

type availabilityService struct {
	rentalRepo repository.RentalRepository
}

func NewAvailabilityService(rentalRepo repository.RentalRepository) AvailabilityService {
	return &availabilityService{rentalRepo: rentalRepo}
}

func (s *availabilityService) Resolve(ctx context.Context, gameID string) (domain.AvailabilityStatus, error) {
	open, err := s.rentalRepo.OpenPeriodCount(ctx, gameID)
	if err != nil {
		return "", err
	}

	switch {
	case open == 0:
		return domain.GameAvailable, nil
	case open == 1:
		return domain.GameHiredOut, nil
	default:
		logger.Warn("Game has multiple open rental periods", "game_id", gameID, "open_count", open)
		return domain.GameMultipleOpenRentals, nil
	}
}

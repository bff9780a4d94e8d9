package service

import (
	"context"
	"fmt"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type gameService struct {
	gameRepo     repository.GameRepository
	availability AvailabilityService
}

func NewGameService(gameRepo repository.GameRepository, availability AvailabilityService) GameService {
	return &gameService{gameRepo: gameRepo, availability: availability}
}

func (s *gameService) SearchAvailable(ctx context.Context, title, platform string) ([]domain.GameAvailability, error) {
	games, err := s.gameRepo.Search(ctx, title, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to search games: %w", err)
	}

	results := make([]domain.GameAvailability, 0, len(games))
	for _, g := range games {
		status, err := s.availability.Resolve(ctx, g.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve availability for game %s: %w", g.GameID, err)
		}
		results = append(results, domain.GameAvailability{
			GameID:   g.GameID,
			Title:    g.Title,
			Platform: g.Platform,
			Genre:    g.Genre,
			Status:   status,
		})
	}
	return results, nil
}

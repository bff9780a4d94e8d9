package postgres

import (
	"context"
	"database/sql"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Exists(ctx context.Context, gameID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM games WHERE game_id = $1`
	if err := r.db.QueryRowContext(ctx, query, gameID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gameRepository) Search(ctx context.Context, title, platform string) ([]domain.Game, error) {
	query := `SELECT game_id, title, platform, genre, purchase_price_cents, purchase_date
	          FROM games WHERE LOWER(title) = LOWER($1) AND LOWER(platform) = LOWER($2)`
	rows, err := r.db.QueryContext(ctx, query, title, platform)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.GameID, &g.Title, &g.Platform, &g.Genre, &g.PurchasePriceCents, &g.PurchaseDate); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

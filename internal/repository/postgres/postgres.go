package postgres

import (
	"database/sql"

	"gamerental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.GameRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		GameRepository:   NewGameRepository(db),
		RentalRepository: NewRentalRepository(db),
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const openPeriodsByGameQuery = `SELECT COUNT(*) FROM rental_periods rp
	JOIN game_rentals gr ON gr.rental_index = rp.rental_index
	WHERE gr.game_id = $1 AND (rp.end_date IS NULL OR rp.end_date = '')`

func (r *rentalRepository) OpenPeriodCount(ctx context.Context, gameID string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, openPeriodsByGameQuery, gameID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) CountOpenByCustomer(ctx context.Context, customerID string) (int, error) {
	query := `SELECT COUNT(*) FROM rental_periods rp
	          JOIN game_rentals gr ON gr.rental_index = rp.rental_index
	          WHERE gr.customer_id = $1 AND (rp.end_date IS NULL OR rp.end_date = '')`
	var count int
	if err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) IssueRental(ctx context.Context, customerID, gameID, startDate string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin rental transaction: %w", err)
	}
	defer tx.Rollback()

	// Re-validate availability inside the transaction; the caller's earlier
	// check may have raced with another issuance.
	var open int
	if err := tx.QueryRowContext(ctx, openPeriodsByGameQuery, gameID).Scan(&open); err != nil {
		return 0, err
	}
	if open > 0 {
		return 0, domain.ErrGameUnavailable
	}

	var nextIndex int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(rental_index), 0) + 1 FROM game_rentals`).Scan(&nextIndex); err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO game_rentals (rental_index, customer_id, game_id) VALUES ($1, $2, $3)`,
		nextIndex, customerID, gameID); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rental_periods (rental_index, start_date, end_date) VALUES ($1, $2, '')`,
		nextIndex, startDate); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit rental transaction: %w", err)
	}
	return nextIndex, nil
}

func (r *rentalRepository) CloseOpenPeriods(ctx context.Context, gameID, endDate string) (int64, error) {
	query := `UPDATE rental_periods SET end_date = $1
	          WHERE rental_index IN (SELECT rental_index FROM game_rentals WHERE game_id = $2)
	          AND (end_date IS NULL OR end_date = '')`
	res, err := r.db.ExecContext(ctx, query, endDate, gameID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentalRepository) LoadHistory(ctx context.Context, records []domain.RentalRecord, periods []domain.RentalPeriod) error {
	if len(records) != len(periods) {
		return fmt.Errorf("record/period count mismatch: %d vs %d", len(records), len(periods))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO game_rentals (rental_index, customer_id, game_id) VALUES ($1, $2, $3)`,
			records[i].RentalIndex, records[i].CustomerID, records[i].GameID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rental_periods (rental_index, start_date, end_date) VALUES ($1, $2, $3)`,
			periods[i].RentalIndex, periods[i].StartDate, periods[i].EndDate); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}
	return nil
}

func (r *rentalRepository) FindOpenRentalAnomalies(ctx context.Context) ([]domain.OpenRentalAnomaly, error) {
	query := `SELECT gr.game_id, COUNT(*) AS open_count FROM rental_periods rp
	          JOIN game_rentals gr ON gr.rental_index = rp.rental_index
	          WHERE rp.end_date IS NULL OR rp.end_date = ''
	          GROUP BY gr.game_id HAVING COUNT(*) > 1`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var anomalies []domain.OpenRentalAnomaly
	for rows.Next() {
		var a domain.OpenRentalAnomaly
		if err := rows.Scan(&a.GameID, &a.OpenCount); err != nil {
			return nil, err
		}
		anomalies = append(anomalies, a)
	}
	return anomalies, rows.Err()
}

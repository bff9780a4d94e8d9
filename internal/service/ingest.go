package service

import (
	"context"
	"fmt"
	"io"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/ingest"
	"gamerental-backend/internal/repository"
)

type ingestService struct {
	rentalRepo repository.RentalRepository
}

func NewIngestService(rentalRepo repository.RentalRepository) IngestService {
	return &ingestService{rentalRepo: rentalRepo}
}

func (s *ingestService) LoadRentalHistory(ctx context.Context, r io.Reader) (*ingest.BatchReport, error) {
	raws, err := ingest.ReadRawRecords(r)
	if err != nil {
		return nil, err
	}

	cleaned, report := ingest.CleanAll(raws)

	records := make([]domain.RentalRecord, 0, len(cleaned))
	periods := make([]domain.RentalPeriod, 0, len(cleaned))
	for _, c := range cleaned {
		rec, period := c.Record()
		records = append(records, rec)
		periods = append(periods, period)
	}

	if err := s.rentalRepo.LoadHistory(ctx, records, periods); err != nil {
		return nil, fmt.Errorf("failed to load rental history batch %s: %w", report.BatchID, err)
	}
	return report, nil
}

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"gamerental-backend/internal/logger"
)

// BatchReport summarizes one cleaning run: what was accepted and every record
// that was dropped, with its reason and the offending raw line.
type BatchReport struct {
	BatchID    string
	Total      int
	Accepted   int
	Rejections []Rejection
}

// ReadRawRecords parses a header-prefixed, tab-separated rental history
// stream into raw records, one per line. Blank lines are skipped.
func ReadRawRecords(r io.Reader) ([]RawRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []RawRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if lineNo == 1 {
			// header
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		// pad short lines so missing-field checks see empty values
		for len(fields) < 4 {
			fields = append(fields, "")
		}
		records = append(records, RawRecord{
			GameID:      strings.TrimSpace(fields[0]),
			RentalStart: strings.TrimSpace(fields[1]),
			RentalEnd:   strings.TrimSpace(fields[2]),
			CustomerID:  strings.TrimSpace(fields[3]),
			Line:        lineNo,
			Raw:         line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rental history: %w", err)
	}
	return records, nil
}

// CleanAll runs the cleaning pipeline over a whole raw batch. Every rejection
// is logged with its reason and raw input; the report carries them as well so
// callers can surface the drops.
func CleanAll(raws []RawRecord) ([]CleanRecord, *BatchReport) {
	cleaner := NewCleaner()
	report := &BatchReport{
		BatchID: uuid.NewString(),
		Total:   len(raws),
	}

	var cleaned []CleanRecord
	for _, raw := range raws {
		outcome := cleaner.Clean(raw)
		if !outcome.Accepted {
			report.Rejections = append(report.Rejections, outcome.Rejection)
			logger.Warn("Dropped rental record",
				"batch_id", report.BatchID,
				"line", outcome.Rejection.Line,
				"reason", outcome.Rejection.Reason,
				"error", outcome.Rejection.Err,
				"raw", outcome.Rejection.Raw)
			continue
		}
		cleaned = append(cleaned, outcome.Record)
	}
	report.Accepted = len(cleaned)

	logger.Info("Rental history batch cleaned",
		"batch_id", report.BatchID,
		"total", report.Total,
		"accepted", report.Accepted,
		"rejected", len(report.Rejections))
	return cleaned, report
}

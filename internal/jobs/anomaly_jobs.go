package jobs

import (
	"context"

	"gamerental-backend/internal/logger"
)

// ScanRentalAnomalies reports every game copy holding more than one open
// rental period. The violation is surfaced, not repaired; a return closes
// all open periods for the copy at once.
func (jr *JobRunner) ScanRentalAnomalies() {
	jr.runWithRecovery("ScanRentalAnomalies", func() {
		ctx := context.Background()

		anomalies, err := jr.store.FindOpenRentalAnomalies(ctx)
		if err != nil {
			logger.Error("Failed to scan for rental anomalies", "error", err)
			return
		}

		if len(anomalies) == 0 {
			logger.Info("No rental anomalies found")
			return
		}

		logger.Warn("Found games with multiple open rental periods", "count", len(anomalies))
		for _, a := range anomalies {
			logger.Warn("Rental anomaly",
				"game_id", a.GameID,
				"open_count", a.OpenCount)
		}
	})
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gamerental-backend/internal/config"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository/postgres"
	"gamerental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	rentalsFile := flag.String("file", "", "Rental history file to ingest (overrides config)")
	flag.Parse()

	// Load .env overrides if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	path := cfg.Ingestion.RentalsFile
	if *rentalsFile != "" {
		path = *rentalsFile
	}
	if path == "" {
		log.Fatalf("No rental history file given; set ingestion.rentals_file or pass -file")
	}
	logger.Info("Starting rental history ingestion", "file", path)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	ingestSvc := service.NewIngestService(store.RentalRepository)

	f, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open rental history file", "error", err, "file", path)
		log.Fatalf("Failed to open rental history file: %v", err)
	}
	defer f.Close()

	report, err := ingestSvc.LoadRentalHistory(context.Background(), f)
	if err != nil {
		logger.Error("Ingestion failed", "error", err)
		log.Fatalf("Ingestion failed: %v", err)
	}

	logger.Info("Ingestion finished",
		"batch_id", report.BatchID,
		"total", report.Total,
		"accepted", report.Accepted,
		"rejected", len(report.Rejections))
}

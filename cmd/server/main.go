package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "gamerental-backend/internal/api/http"
	"gamerental-backend/internal/config"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository/postgres"
	"gamerental-backend/internal/service"
	"gamerental-backend/internal/subscription"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env overrides if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Game Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Load the subscription directory
	directory, err := subscription.Load(cfg.Subscription.File)
	if err != nil {
		logger.Error("Failed to load subscription directory", "error", err, "file", cfg.Subscription.File)
		log.Fatalf("Failed to load subscription directory: %v", err)
	}
	logger.Info("Subscription directory loaded", "file", cfg.Subscription.File)

	// Initialize Services
	availabilitySvc := service.NewAvailabilityService(store.RentalRepository)
	rentalSvc := service.NewRentalService(store.GameRepository, store.RentalRepository, availabilitySvc, directory)
	gameSvc := service.NewGameService(store.GameRepository, availabilitySvc)

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, rentalSvc, gameSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

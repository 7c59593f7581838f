package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"log"
	"log/slog"

	"paradecast/internal/config"

	"github.com/joho/godotenv"

	_ "paradecast/docs" // Import generated docs
)

// @title Paradecast API
// @version 1.0
// @description Adverse-weather likelihood predictions for a point and date range
// @BasePath /
func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr(), "provider", cfg.Forecast.Provider)
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}

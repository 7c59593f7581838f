package main

import (
	"log/slog"

	"paradecast/internal/config"
	"paradecast/internal/forecast"
	"paradecast/internal/insight"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	forecastService forecast.Service
	insightService  insight.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize forecast service
	forecastSvc, err := forecast.NewService(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		forecastService: forecastSvc,
		insightService:  insight.NewService(cfg, logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

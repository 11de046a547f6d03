package main

import (
	"net/http"
	"os"

	"github.com/aleccaputo/sanguine-web/internal/api"
	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/aleccaputo/sanguine-web/internal/database"
	"github.com/aleccaputo/sanguine-web/internal/handler"
	"github.com/aleccaputo/sanguine-web/internal/logger"
	"github.com/aleccaputo/sanguine-web/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Success("Connected to PostgreSQL")

	// Wire upstream clients into the handlers
	handler.Init(cfg)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(cfg.AllowedOrigin, router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

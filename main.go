// main.go
package main

import (
	"log"
	"time"

	"pos-terminal/cmd"
	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/session"
	"pos-terminal/internal/wire"
	"pos-terminal/pkg/utils"
	"pos-terminal/web"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.Backend.URL),
		zap.Bool("debug", config.App.Debug),
	)

	// Restore persisted session (corrupt records degrade to logged out)
	store := session.NewStore(config.Session.File, logger)

	// Backend API client
	timeout := time.Duration(config.Backend.TimeoutSeconds) * time.Second
	api := backend.NewBackend(config.Backend.URL, timeout, logger)

	// Template renderer
	renderer, err := web.NewRenderer(logger)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(store, api, renderer, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"search-rag-server/internal/infrastructure/config"
	"search-rag-server/internal/infrastructure/logger"
	_ "search-rag-server/internal/infrastructure/metrics" // Register Prometheus metrics
	"search-rag-server/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

// @title Search RAG Server
// @version 1.0
// @description Web search and content extraction service backed by Apify's RAG Web Browser actor, exposed over REST and the Model Context Protocol.
// @BasePath /
func (app *Application) Start(ctx context.Context) error {
	return app.httpServer.Run()
}

func main() {
	ctx := context.Background()

	// Load configuration; a missing APIFY_API_TOKEN is fatal here, before
	// the server starts accepting requests.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("log_level", cfg.LogLevel).
		Str("actor_url", cfg.ApifyActorURL).
		Msg("Starting search RAG service")

	// Create application with dependency injection
	application, err := CreateApplication(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	// Start application
	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

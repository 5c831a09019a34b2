package infrastructure

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog/log"

	"search-rag-server/internal/domain/search"
	"search-rag-server/internal/infrastructure/apify"
	"search-rag-server/internal/infrastructure/auth"
	"search-rag-server/internal/infrastructure/config"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Actor client
	ProvideActorClient,

	// Search service defaults
	ProvideSearchOptions,

	// Auth validator
	ProvideAuthValidator,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideActorClient provides the Apify actor client
func ProvideActorClient(cfg *config.Config) search.ActorClient {
	return apify.NewClient(apify.ClientConfig{
		BaseURL:  cfg.ApifyActorURL,
		APIToken: cfg.ApifyAPIToken,
		Timeout:  time.Duration(cfg.ApifyTimeoutSecs) * time.Second,
	})
}

// ProvideSearchOptions provides the domain defaults from configuration
func ProvideSearchOptions(cfg *config.Config) search.Options {
	return search.Options{
		DefaultMaxResults:    cfg.DefaultMaxResults,
		PersonContentWait:    cfg.PersonContentWait,
		RemoveCookieWarnings: cfg.RemoveCookieBanners,
	}
}

// ProvideAuthValidator provides the auth validator
func ProvideAuthValidator(ctx context.Context, cfg *config.Config) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log.Logger)
}

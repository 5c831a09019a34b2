package config

import (
	"context"
	"strings"

	"github.com/caarlos0/env/v11"

	"search-rag-server/utils/platformerrors"
)

// Config holds all configuration for the search RAG service
type Config struct {
	// HTTP Server
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json or console

	// Apify RAG Web Browser actor
	ApifyAPIToken       string  `env:"APIFY_API_TOKEN"`
	ApifyActorURL       string  `env:"APIFY_ACTOR_URL" envDefault:"https://rag-web-browser.apify.actor"`
	ApifyTimeoutSecs    int     `env:"APIFY_TIMEOUT_SECS" envDefault:"40"`
	DefaultMaxResults   int     `env:"SEARCH_DEFAULT_MAX_RESULTS" envDefault:"3"`
	PersonContentWait   float64 `env:"SEARCH_PERSON_CONTENT_WAIT_SECS" envDefault:"3"`
	RemoveCookieBanners bool    `env:"SEARCH_REMOVE_COOKIE_WARNINGS" envDefault:"true"`

	// Authentication (optional, disabled by default)
	AuthEnabled  bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer   string `env:"AUTH_ISSUER"`
	AuthAudience string `env:"AUTH_AUDIENCE"`
	AuthJWKSURL  string `env:"AUTH_JWKS_URL"`
}

// LoadConfig loads configuration from environment variables.
// A missing Apify token is a fatal condition: the service refuses to start
// rather than failing every request later.
func LoadConfig() (*Config, error) {
	ctx := context.Background()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeConfig, "failed to parse environment", err,
			"4b8e2f61-9d3a-47c5-b0e8-72a1f56c9d04")
	}

	if strings.TrimSpace(cfg.ApifyAPIToken) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeConfig, "APIFY_API_TOKEN is required", nil,
			"6d1f3b9c-84e7-4a20-9c5d-e0b72f48a163")
	}
	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeConfig, "AUTH_ISSUER is required when AUTH_ENABLED is true", nil,
				"f3a85c72-1b64-4de9-a057-9c4e60d2b8f1")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeConfig, "AUTH_JWKS_URL is required when AUTH_ENABLED is true", nil,
				"a97d04e8-53cf-4b16-8e2a-d61f7c30b945")
		}
	}
	return cfg, nil
}

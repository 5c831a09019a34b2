package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-rag-server/utils/platformerrors"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APIFY_API_TOKEN", "test-token")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "https://rag-web-browser.apify.actor", cfg.ApifyActorURL)
	assert.Equal(t, 40, cfg.ApifyTimeoutSecs)
	assert.Equal(t, 3, cfg.DefaultMaxResults)
	assert.Equal(t, 3.0, cfg.PersonContentWait)
	assert.True(t, cfg.RemoveCookieBanners)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoadConfigMissingToken(t *testing.T) {
	t.Setenv("APIFY_API_TOKEN", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), "APIFY_API_TOKEN")
}

func TestLoadConfigAuthEnabledRequiresIssuerAndJWKS(t *testing.T) {
	t.Setenv("APIFY_API_TOKEN", "test-token")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_ISSUER", "")
	t.Setenv("AUTH_JWKS_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), "AUTH_ISSUER")

	t.Setenv("AUTH_ISSUER", "https://issuer.example")
	_, err = LoadConfig()
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), "AUTH_JWKS_URL")
}

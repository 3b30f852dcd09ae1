package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRAPI_URL", "")
	t.Setenv("STRAPI_API_TOKEN", "")
	t.Setenv("SHOPIFY_FEED_URL", "")
	t.Setenv("API_PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:1337", cfg.StoreURL)
	assert.Equal(t, "https://josephjoseph.com/products.json", cfg.FeedURL)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.StoreToken)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STRAPI_URL", "https://cms.example.com")
	t.Setenv("STRAPI_API_TOKEN", "secret")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("DATABASE_URL", "sqlite://runs.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.StoreURL)
	assert.Equal(t, "secret", cfg.StoreToken)
	assert.Equal(t, "localhost:9092", cfg.KafkaBrokers)
	assert.Equal(t, "sqlite://runs.db", cfg.DatabaseURL)
}

func TestRequireStoreToken(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.RequireStoreToken())

	cfg.StoreToken = "secret"
	require.NoError(t, cfg.RequireStoreToken())
}

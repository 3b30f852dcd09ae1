package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Remote catalog store (Strapi)
	StoreURL   string
	StoreToken string

	// Upstream product feed
	FeedURL string

	// Run journal, optional (sqlite://path or a postgres DSN)
	DatabaseURL string

	// Sync event stream, optional
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		StoreURL:     getEnv("STRAPI_URL", "http://localhost:1337"),
		StoreToken:   getEnv("STRAPI_API_TOKEN", ""),
		FeedURL:      getEnv("SHOPIFY_FEED_URL", "https://josephjoseph.com/products.json"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		APIPort:      getEnv("API_PORT", "8080"),
		APIHost:      getEnv("API_HOST", "0.0.0.0"),
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}, nil
}

// RequireStoreToken fails when the bearer credential for the catalog store
// is missing. Import scripts call this before doing any work; the read-only
// API server does not, since public reads work without a token.
func (c *Config) RequireStoreToken() error {
	if c.StoreToken == "" {
		return fmt.Errorf("STRAPI_API_TOKEN not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

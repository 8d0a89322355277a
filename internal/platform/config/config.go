package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	CurrencyCode    string
	CatalogFile     string
	NotificationTTL time.Duration
	RateLimit       string // ulule/limiter formatted rate, e.g. "60-M"
	AllowedOrigins  []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CURRENCY_CODE", "TWD")
	viper.SetDefault("CATALOG_FILE", "")
	viper.SetDefault("NOTIFICATION_TTL", "2500ms")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CurrencyCode = viper.GetString("CURRENCY_CODE")
	cfg.CatalogFile = viper.GetString("CATALOG_FILE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	ttlStr := viper.GetString("NOTIFICATION_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 2500 * time.Millisecond
		log.Printf("Warning: Invalid value for NOTIFICATION_TTL ('%s'). Defaulting to %s\n", ttlStr, ttl)
	}
	cfg.NotificationTTL = ttl

	return cfg, nil
}

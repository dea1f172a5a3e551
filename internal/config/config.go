package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Discord     DiscordConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Advancement AdvancementConfig
}

// DiscordConfig holds Discord notification configuration. Optional: with
// no token the service falls back to console notifications.
type DiscordConfig struct {
	Token     string
	ChannelID string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: in-memory repositories are used when empty
}

// CatalogConfig holds content catalog API configuration
type CatalogConfig struct {
	BaseURL string
}

// AdvancementConfig tunes the advancement service
type AdvancementConfig struct {
	Cost             int
	StrictResolution bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:     os.Getenv("DISCORD_TOKEN"),
			ChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Catalog: CatalogConfig{
			BaseURL: os.Getenv("CATALOG_API_URL"),
		},
		Advancement: AdvancementConfig{
			Cost:             getEnvAsIntOrDefault("ADVANCE_COST", 0),
			StrictResolution: os.Getenv("STRICT_RESOLUTION") == "true",
		},
	}

	// Validate required fields
	if cfg.Catalog.BaseURL == "" {
		return nil, fmt.Errorf("CATALOG_API_URL is required")
	}
	if cfg.Discord.Token != "" && cfg.Discord.ChannelID == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

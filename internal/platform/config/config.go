package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// AccountCodeLength is the required digit count of account codes.
	AccountCodeLength int
	// EntryNumberWidth is the zero-padded width of the sequence part of
	// entry numbers, e.g. 4 for JE-2025-0001.
	EntryNumberWidth int

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ACCOUNT_CODE_LENGTH", 6)
	viper.SetDefault("ENTRY_NUMBER_WIDTH", 4)
	viper.SetDefault("RATE_LIMIT", "100-M")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.AccountCodeLength = viper.GetInt("ACCOUNT_CODE_LENGTH")
	if cfg.AccountCodeLength <= 0 {
		cfg.AccountCodeLength = 6
		log.Printf("Warning: Invalid ACCOUNT_CODE_LENGTH. Defaulting to %d.\n", cfg.AccountCodeLength)
	}

	cfg.EntryNumberWidth = viper.GetInt("ENTRY_NUMBER_WIDTH")
	if cfg.EntryNumberWidth <= 0 {
		cfg.EntryNumberWidth = 4
		log.Printf("Warning: Invalid ENTRY_NUMBER_WIDTH. Defaulting to %d.\n", cfg.EntryNumberWidth)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
	}

	return cfg, nil
}

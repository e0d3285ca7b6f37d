package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LogLevel           string
	AnnualInterestRate decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Every key has a default, so the binary runs with no environment at all.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("LOG_LEVEL", "error")
	viper.SetDefault("ANNUAL_INTEREST_RATE", "0.05")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	rateStr := viper.GetString("ANNUAL_INTEREST_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ANNUAL_INTEREST_RATE %q: %w", rateStr, err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("invalid ANNUAL_INTEREST_RATE %q: must not be negative", rateStr)
	}
	cfg.AnnualInterestRate = rate

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level.
// Unrecognized names fall back to error so an interactive session stays quiet.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

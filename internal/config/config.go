// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration values for the demo runner.
// Values are populated by Load from environment variables.
type Config struct {
	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// Seed is the deterministic seed for the generated sample data.
	// Defaults to 1; the same seed always produces the same records.
	Seed int64

	// SeedPeople is how many people the seeder registers. Defaults to 12.
	SeedPeople int

	// SeedTrips is how many trips the seeder creates. Defaults to 4.
	SeedTrips int

	// ReportLimit caps the length of printed rankings. Defaults to 5.
	ReportLimit int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a numeric variable does not parse.
func Load() (Config, error) {
	cfg := Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Seed, err = getEnvInt64("SEED", 1); err != nil {
		return Config{}, err
	}
	if cfg.SeedPeople, err = getEnvInt("SEED_PEOPLE", 12); err != nil {
		return Config{}, err
	}
	if cfg.SeedTrips, err = getEnvInt("SEED_TRIPS", 4); err != nil {
		return Config{}, err
	}
	if cfg.ReportLimit, err = getEnvInt("REPORT_LIMIT", 5); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses the named variable as an int, or returns fallback when
// unset or empty.
func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// getEnvInt64 parses the named variable as an int64, or returns fallback
// when unset or empty.
func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

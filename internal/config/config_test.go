package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfdias/tripdesk/internal/config"
)

// TestLoad_defaults verifies that unset env vars fall back to their defaults.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("SEED_PEOPLE", "")
	t.Setenv("SEED_TRIPS", "")
	t.Setenv("REPORT_LIMIT", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, int64(1), cfg.Seed)
	require.Equal(t, 12, cfg.SeedPeople)
	require.Equal(t, 4, cfg.SeedTrips)
	require.Equal(t, 5, cfg.ReportLimit)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "42")
	t.Setenv("SEED_PEOPLE", "30")
	t.Setenv("SEED_TRIPS", "8")
	t.Setenv("REPORT_LIMIT", "10")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 30, cfg.SeedPeople)
	require.Equal(t, 8, cfg.SeedTrips)
	require.Equal(t, 10, cfg.ReportLimit)
}

// TestLoad_badNumber verifies that a non-numeric value is reported with the
// variable name.
func TestLoad_badNumber(t *testing.T) {
	t.Setenv("SEED_PEOPLE", "a dozen")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "SEED_PEOPLE")
}

package cmd_test

import (
	"testing"
	"time"

	"bakery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(lookup(nil))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "migrations", cfg.MigrationsPath)
		assert.Equal(t, time.Duration(0), cfg.NewOrdersWindow)
		assert.False(t, cfg.CountProblemAsDue)
		assert.InDelta(t, 1.0, cfg.SampleRate, 1e-9)
		assert.Equal(t, time.UTC, cfg.Location())
	})

	t.Run("should read dashboard options and time zone", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(lookup(map[string]string{
			"TIME_ZONE":            "Europe/Berlin",
			"NEW_ORDERS_WINDOW":    "48h",
			"COUNT_PROBLEM_AS_DUE": "true",
			"STATS_JOB_SCHEDULE":   "*/30 * * * * *",
		}))

		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", cfg.Location().String())
		assert.Equal(t, 48*time.Hour, cfg.NewOrdersWindow)
		assert.True(t, cfg.CountProblemAsDue)
		assert.Equal(t, "*/30 * * * * *", cfg.StatsJobSchedule)
	})

	t.Run("should report every invalid value", func(t *testing.T) {
		_, err := cmd.ConfigFromEnv(lookup(map[string]string{
			"TIME_ZONE":         "Mars/Olympus",
			"NEW_ORDERS_WINDOW": "-1h",
			"OTEL_SAMPLE_RATE":  "often",
		}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "TIME_ZONE")
		assert.Contains(t, err.Error(), "NEW_ORDERS_WINDOW")
		assert.Contains(t, err.Error(), "OTEL_SAMPLE_RATE")
	})

	t.Run("should build the connection string", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(lookup(map[string]string{
			"DB_HOST": "db", "DB_USER": "bakery", "DB_PASSWORD": "secret", "DB_NAME": "orders",
		}))

		require.NoError(t, err)
		assert.Equal(t, "host=db port=5432 user=bakery password=secret dbname=orders sslmode=disable", cfg.DSN())
	})
}

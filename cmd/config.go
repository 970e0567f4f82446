package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"bakery/internal/telemetry"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	MigrationsPath string

	RedisURL string

	KafkaBrokers                string
	KafkaOrderStateChangedTopic string

	TimeZone          string
	NewOrdersWindow   time.Duration
	CountProblemAsDue bool
	StatsJobSchedule  string

	LogLevel string

	OTLPEndpoint   string
	EnableTracing  bool
	EnableMetrics  bool
	SampleRate     float64
	ServiceName    string
	ServiceVersion string
	Environment    string

	location *time.Location
}

// LoadConfig reads the configuration from the environment. Values from a .env
// file in the working directory fill in variables that are not set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds the configuration from a variable lookup and applies defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:                    env("HTTP_PORT", "8080"),
		DBHost:                      env("DB_HOST", "localhost"),
		DBPort:                      env("DB_PORT", "5432"),
		DBUser:                      env("DB_USER", "postgres"),
		DBPassword:                  env("DB_PASSWORD", ""),
		DBName:                      env("DB_NAME", "bakery"),
		DBSslMode:                   env("DB_SSLMODE", "disable"),
		MigrationsPath:              env("MIGRATIONS_PATH", "migrations"),
		RedisURL:                    env("REDIS_URL", ""),
		KafkaBrokers:                env("KAFKA_BROKERS", ""),
		KafkaOrderStateChangedTopic: env("KAFKA_ORDER_STATE_CHANGED_TOPIC", ""),
		TimeZone:                    env("TIME_ZONE", "UTC"),
		StatsJobSchedule:            env("STATS_JOB_SCHEDULE", ""),
		LogLevel:                    env("LOG_LEVEL", "info"),
		OTLPEndpoint:                env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:                 env("SERVICE_NAME", "bakery"),
		ServiceVersion:              env("SERVICE_VERSION", "dev"),
		Environment:                 env("ENVIRONMENT", "development"),
	}

	var durErr, problemErr, tracingErr, metricsErr, rateErr, zoneErr error

	cfg.NewOrdersWindow, durErr = time.ParseDuration(env("NEW_ORDERS_WINDOW", "0s"))
	if durErr == nil && cfg.NewOrdersWindow < 0 {
		durErr = errors.New("must not be negative")
	}
	cfg.CountProblemAsDue, problemErr = strconv.ParseBool(env("COUNT_PROBLEM_AS_DUE", "false"))
	cfg.EnableTracing, tracingErr = strconv.ParseBool(env("OTEL_ENABLE_TRACING", "false"))
	cfg.EnableMetrics, metricsErr = strconv.ParseBool(env("OTEL_ENABLE_METRICS", "false"))
	cfg.SampleRate, rateErr = strconv.ParseFloat(env("OTEL_SAMPLE_RATE", "1.0"), 64)
	cfg.location, zoneErr = time.LoadLocation(cfg.TimeZone)

	if err := errors.Join(
		wrapKey("NEW_ORDERS_WINDOW", durErr),
		wrapKey("COUNT_PROBLEM_AS_DUE", problemErr),
		wrapKey("OTEL_ENABLE_TRACING", tracingErr),
		wrapKey("OTEL_ENABLE_METRICS", metricsErr),
		wrapKey("OTEL_SAMPLE_RATE", rateErr),
		wrapKey("TIME_ZONE", zoneErr),
	); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func wrapKey(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("invalid %s: %w", key, err)
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location is the zone day and month boundaries are computed in.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c Config) Telemetry() telemetry.Config {
	return telemetry.Config{
		ServiceName:    c.ServiceName,
		ServiceVersion: c.ServiceVersion,
		Environment:    c.Environment,
		OTLPEndpoint:   c.OTLPEndpoint,
		EnableTracing:  c.EnableTracing,
		EnableMetrics:  c.EnableMetrics,
		SampleRate:     c.SampleRate,
	}
}

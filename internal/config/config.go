package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Metrics  MetricsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// MetricsConfig holds the metric policy knobs. Defaults match the stock
// deployment; every value can be retuned per environment.
type MetricsConfig struct {
	NominalShiftMinutes int
	AllowedBreakMinutes int
	PunchGraceMinutes   int
	PunchLimitMinutes   int
	WorkingTimeTypes    []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "rta_tracker"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: 25,
		MinConns: 5,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Metrics policy configuration
	nominal, err := strconv.Atoi(getEnv("NOMINAL_SHIFT_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOMINAL_SHIFT_MINUTES: %w", err)
	}
	allowance, err := strconv.Atoi(getEnv("ALLOWED_BREAK_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALLOWED_BREAK_MINUTES: %w", err)
	}
	grace, err := strconv.Atoi(getEnv("PUNCH_GRACE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCH_GRACE_MINUTES: %w", err)
	}
	limit, err := strconv.Atoi(getEnv("PUNCH_LIMIT_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCH_LIMIT_MINUTES: %w", err)
	}

	config.Metrics = MetricsConfig{
		NominalShiftMinutes: nominal,
		AllowedBreakMinutes: allowance,
		PunchGraceMinutes:   grace,
		PunchLimitMinutes:   limit,
		WorkingTimeTypes:    getEnvSlice("WORKING_TIME_TYPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Metrics.NominalShiftMinutes <= 0 {
		return fmt.Errorf("NOMINAL_SHIFT_MINUTES must be positive")
	}
	if c.Metrics.AllowedBreakMinutes < 0 {
		return fmt.Errorf("ALLOWED_BREAK_MINUTES must not be negative")
	}
	if c.Metrics.PunchLimitMinutes <= c.Metrics.PunchGraceMinutes {
		return fmt.Errorf("PUNCH_LIMIT_MINUTES must exceed PUNCH_GRACE_MINUTES")
	}
	for _, t := range c.Metrics.WorkingTimeTypes {
		if !tracking.BreakType(t).IsValid() {
			return fmt.Errorf("unknown WORKING_TIME_TYPES entry: %s", t)
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Policy materializes the metrics policy from the loaded configuration.
func (c *Config) Policy() metrics.Policy {
	policy := metrics.DefaultPolicy()
	policy.NominalShiftMinutes = c.Metrics.NominalShiftMinutes
	policy.AllowedBreakMinutes = c.Metrics.AllowedBreakMinutes
	policy.PunchGraceMinutes = c.Metrics.PunchGraceMinutes
	policy.PunchLimitMinutes = c.Metrics.PunchLimitMinutes

	if len(c.Metrics.WorkingTimeTypes) > 0 {
		workingTime := make(map[tracking.BreakType]bool, len(c.Metrics.WorkingTimeTypes))
		for _, t := range c.Metrics.WorkingTimeTypes {
			workingTime[tracking.BreakType(t)] = true
		}
		// Compensation is always credited in conformance.
		workingTime[tracking.TypeCompensation] = true
		policy.WorkingTimeTypes = workingTime
	}

	return policy
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

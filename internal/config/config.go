package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	QueryTimeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	Timezone    string
	FrontendURL string
}

// AttendanceConfig holds the shift-start policy and the tardiness fine.
// Shift starts are minutes from midnight in the app timezone.
type AttendanceConfig struct {
	MorningStartMinutes   int
	AfternoonStartMinutes int
	GracePeriodMinutes    int
	TardinessPenalty      string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments where vars are injected.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	queryTimeout, err := time.ParseDuration(getEnv("DB_QUERY_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_QUERY_TIMEOUT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         dbPort,
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", ""),
		Name:         getEnv("DB_NAME", "giftnest_backoffice"),
		SSLMode:      getEnv("DB_SSL_MODE", "disable"),
		QueryTimeout: queryTimeout,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("APP_TIMEZONE", "America/Mexico_City"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Attendance policy configuration
	morningStart, err := strconv.Atoi(getEnv("SHIFT_MORNING_START_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_MORNING_START_MINUTES: %w", err)
	}
	afternoonStart, err := strconv.Atoi(getEnv("SHIFT_AFTERNOON_START_MINUTES", "780"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_AFTERNOON_START_MINUTES: %w", err)
	}
	gracePeriod, err := strconv.Atoi(getEnv("SHIFT_GRACE_PERIOD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_GRACE_PERIOD_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		MorningStartMinutes:   morningStart,
		AfternoonStartMinutes: afternoonStart,
		GracePeriodMinutes:    gracePeriod,
		TardinessPenalty:      getEnv("TARDINESS_PENALTY", "10"),
	}

	// Validate required fields
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.MorningStartMinutes >= c.Attendance.AfternoonStartMinutes {
		return fmt.Errorf("SHIFT_MORNING_START_MINUTES must be earlier than SHIFT_AFTERNOON_START_MINUTES")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the tunables of the time & attendance engine.
type AttendanceConfig struct {
	// DebounceWindowMinutes is the minimum gap between two punches before the
	// second one is treated as an accidental duplicate.
	DebounceWindowMinutes int
	// RemoteKeyword marks a punch as remote when it appears (case-insensitive)
	// inside the punch location address.
	RemoteKeyword string
	// DefaultScheduleMinutes is used for employees without a daily schedule.
	DefaultScheduleMinutes int
	// ReportTimezone is the timezone used to bucket punches into calendar days.
	ReportTimezone string
}

func Load() (*Config, error) {
	// .env is optional; real env vars win in deployed environments.
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "ponto"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
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
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance engine configuration
	debounceMinutes, err := strconv.Atoi(getEnv("PUNCH_DEBOUNCE_MINUTES", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCH_DEBOUNCE_MINUTES: %w", err)
	}

	scheduleMinutes, err := strconv.Atoi(getEnv("DEFAULT_SCHEDULE_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_SCHEDULE_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DebounceWindowMinutes:  debounceMinutes,
		RemoteKeyword:          getEnv("REMOTE_KEYWORD", "remoto"),
		DefaultScheduleMinutes: scheduleMinutes,
		ReportTimezone:         getEnv("REPORT_TIMEZONE", "America/Sao_Paulo"),
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
	if c.Attendance.DebounceWindowMinutes < 0 {
		return fmt.Errorf("PUNCH_DEBOUNCE_MINUTES must not be negative")
	}
	if c.Attendance.DefaultScheduleMinutes <= 0 {
		return fmt.Errorf("DEFAULT_SCHEDULE_MINUTES must be positive")
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

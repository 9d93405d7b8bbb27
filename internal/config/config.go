package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Workday  WorkdayConfig
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

// WorkdayConfig holds the attendance business rules that vary per deployment.
// OffDays are weekday numbers (0=Sunday .. 6=Saturday) on which attendance is
// not expected; the default matches a Monday-Saturday working week.
type WorkdayConfig struct {
	OffDays            []int
	WorkdayStart       string // HH:MM, scheduled punch-in time
	GracePeriodMinutes int
	Timezone           string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win either way.
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
		Name:     getEnv("DB_NAME", "shrm"),
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
	jwtRefreshExpiration := getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h")
	jwtAccessExpiration := getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h")

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: jwtRefreshExpiration,
		AccessExpiration:  jwtAccessExpiration,
	}

	// Workday configuration
	gracePeriod, err := strconv.Atoi(getEnv("WORKDAY_GRACE_PERIOD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_GRACE_PERIOD_MINUTES: %w", err)
	}

	offDays, err := parseOffDays(getEnv("WORKDAY_OFF_DAYS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_OFF_DAYS: %w", err)
	}

	config.Workday = WorkdayConfig{
		OffDays:            offDays,
		WorkdayStart:       getEnv("WORKDAY_START", "09:00"),
		GracePeriodMinutes: gracePeriod,
		Timezone:           getEnv("WORKDAY_TIMEZONE", "Asia/Kolkata"),
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
	if len(c.Workday.WorkdayStart) != 5 || c.Workday.WorkdayStart[2] != ':' {
		return fmt.Errorf("WORKDAY_START must be in HH:MM format")
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

func parseOffDays(value string) ([]int, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("off day %d out of range 0-6", d)
		}
		days = append(days, d)
	}
	return days, nil
}

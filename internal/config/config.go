package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Office   OfficeConfig
	Leave    LeaveConfig
	Storage  StorageConfig
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
	Port     int
	Env      string
	LogLevel string
}

// OfficeConfig holds the geofence and clock-window rules for attendance.
// All window values are wall-clock times in the office time zone.
type OfficeConfig struct {
	Latitude          float64
	Longitude         float64
	RadiusMeters      float64
	ClockInStart      string // "09:00:00"
	ClockInEnd        string // "09:10:00"
	ClockOutThreshold string // "18:00:00"
	Timezone          string
}

type LeaveConfig struct {
	MonthlyPaidQuotaDays int
	PaidLeaveDailyHours  int
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	officeLat, err := strconv.ParseFloat(getEnv("OFFICE_LATITUDE", "11.258845355278732"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LATITUDE: %w", err)
	}
	officeLon, err := strconv.ParseFloat(getEnv("OFFICE_LONGITUDE", "75.78368254232883"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LONGITUDE: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("OFFICE_RADIUS_METERS", "200"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_RADIUS_METERS: %w", err)
	}

	config.Office = OfficeConfig{
		Latitude:          officeLat,
		Longitude:         officeLon,
		RadiusMeters:      radius,
		ClockInStart:      getEnv("CLOCK_IN_WINDOW_START", "09:00:00"),
		ClockInEnd:        getEnv("CLOCK_IN_WINDOW_END", "09:10:00"),
		ClockOutThreshold: getEnv("CLOCK_OUT_THRESHOLD", "18:00:00"),
		Timezone:          getEnv("OFFICE_TIMEZONE", "Asia/Kolkata"),
	}

	quotaDays, err := strconv.Atoi(getEnv("PAID_LEAVE_QUOTA_DAYS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAID_LEAVE_QUOTA_DAYS: %w", err)
	}
	dailyHours, err := strconv.Atoi(getEnv("PAID_LEAVE_DAILY_HOURS", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAID_LEAVE_DAILY_HOURS: %w", err)
	}

	config.Leave = LeaveConfig{
		MonthlyPaidQuotaDays: quotaDays,
		PaidLeaveDailyHours:  dailyHours,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	for _, w := range []struct{ key, value string }{
		{"CLOCK_IN_WINDOW_START", c.Office.ClockInStart},
		{"CLOCK_IN_WINDOW_END", c.Office.ClockInEnd},
		{"CLOCK_OUT_THRESHOLD", c.Office.ClockOutThreshold},
	} {
		if _, err := time.Parse("15:04:05", w.value); err != nil {
			return fmt.Errorf("invalid %s: %w", w.key, err)
		}
	}
	if _, err := time.LoadLocation(c.Office.Timezone); err != nil {
		return fmt.Errorf("invalid OFFICE_TIMEZONE: %w", err)
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

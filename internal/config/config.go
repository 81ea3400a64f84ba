package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	DBConn     string
	LogLevel   string
	JWTSecret  string
	JWTTTL     time.Duration
	HMACSecret string
	CBRURL     string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	ReminderDays           int
	ReminderSchedule       string
	SessionCleanupSchedule string
}

// NewConfig loads configuration from environment variables. A .env file in the
// working directory is read first when present; real env vars win.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBConn:     getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=finance sslmode=disable"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		HMACSecret: getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),
		CBRURL:     getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "noreply@finance-planner.local"),

		ReminderSchedule:       getEnv("REMINDER_SCHEDULE", "0 8 * * *"),
		SessionCleanupSchedule: getEnv("SESSION_CLEANUP_SCHEDULE", "@hourly"),
	}

	var err error
	if cfg.JWTTTL, err = getEnvDuration("JWT_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ReminderDays, err = getEnvInt("REMINDER_DAYS", 3); err != nil {
		return nil, err
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.HMACSecret == "" {
		return nil, fmt.Errorf("HMAC_SECRET is required")
	}
	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be positive")
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP settings are present
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

// getEnvDuration accepts Go durations ("12h") and plain day counts ("7d")
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	if n := len(value); n > 1 && value[n-1] == 'd' {
		days, err := strconv.Atoi(value[:n-1])
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

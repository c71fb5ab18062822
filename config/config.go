package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	Env              string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string
	RedisURL         string
	LineChannelID    int64
	LineSecret       string
	LineCallbackURL  string
	FrontendOrigin   string
	SessionTTL       time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "5000"),
		Env:              getEnv("APP_ENV", "development"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		LineSecret:       os.Getenv("LINE_CHANNEL_SECRET"),
		LineCallbackURL:  getEnv("LINE_CALLBACK_URL", "http://localhost:5000/api/auth/line/callback"),
		FrontendOrigin:   getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		SessionTTL:       time.Hour * 24 * 7,
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("database config incomplete")
	}

	// The LINE channel id and secret are non-negotiable: the login flow
	// cannot function without them, so startup fails here.
	channelID, err := ParseChannelID(os.Getenv("LINE_CHANNEL_ID"))
	if err != nil {
		return nil, err
	}
	cfg.LineChannelID = channelID

	if cfg.LineSecret == "" {
		return nil, fmt.Errorf("LINE_CHANNEL_SECRET must be set")
	}

	return cfg, nil
}

// ParseChannelID validates the LINE channel id. LINE issues numeric channel
// ids; a non-numeric value usually means the channel secret or bot user id
// was pasted in its place.
func ParseChannelID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("LINE_CHANNEL_ID must be set")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("LINE_CHANNEL_ID must be a numeric value, got %q", raw)
	}
	return id, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

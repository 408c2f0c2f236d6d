package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Driver database yang didukung
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Jenis penyimpanan session chat
const (
	ChatStoreMemory = "memory"
	ChatStoreRedis  = "redis"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	CORSOrigin  string
	DBDriver    string
	DatabaseDSN string

	ChatTypingDelay time.Duration
	ChatStore       string
	RedisURL        string
	ChatSessionTTL  time.Duration

	RateLimitPerSecond float64
	RateLimitBurst     int
}

// FromEnv membaca konfigurasi dari environment (.env sudah di-load oleh cmd)
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		ChatStore:  strings.ToLower(getEnv("CHAT_STORE", ChatStoreMemory)),
		RedisURL:   os.Getenv("REDIS_URL"),
	}
	cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")

	delayMS, err := getInt("CHAT_TYPING_DELAY_MS", 1000)
	if err != nil {
		return nil, err
	}
	if delayMS < 0 {
		return nil, fmt.Errorf("CHAT_TYPING_DELAY_MS must not be negative")
	}
	cfg.ChatTypingDelay = time.Duration(delayMS) * time.Millisecond

	ttlMinutes, err := getInt("CHAT_SESSION_TTL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	if ttlMinutes <= 0 {
		return nil, fmt.Errorf("CHAT_SESSION_TTL_MINUTES must be positive")
	}
	cfg.ChatSessionTTL = time.Duration(ttlMinutes) * time.Minute

	perSecond, err := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_SECOND", "5"), 64)
	if err != nil || perSecond <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be a positive number")
	}
	cfg.RateLimitPerSecond = perSecond

	burst, err := getInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}
	if burst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	cfg.RateLimitBurst = burst

	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres:
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for driver %s", cfg.DBDriver)
		}
	case DriverSQLite:
		if cfg.DatabaseDSN == "" {
			cfg.DatabaseDSN = "concierge.db"
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.ChatStore {
	case ChatStoreMemory:
	case ChatStoreRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when CHAT_STORE=redis")
		}
	default:
		return nil, fmt.Errorf("unsupported CHAT_STORE %q", cfg.ChatStore)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8080"
	defaultDSN       = "homelet.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"
	defaultLogLevel  = "info"
	defaultCacheTTL  = "5m"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string

	// Redis is optional; empty address disables the popular-search cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// Load reads configuration from the environment. A .env file is applied first
// when present (local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:     strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		cfg.RedisDB = n
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// Package config loads and validates environment-based configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisURL    string
	// SecretKey signs session tokens. A missing key is a startup-fatal
	// condition; it must never surface as a per-request failure.
	SecretKey       string
	UploadURL       string
	LogLevel        string
	LogFormat       string
	BcryptCost      int
	LoginRateLimit  int
	LoginRateWindow int // seconds
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		SecretKey:   getEnv("SECRET_KEY", ""),
		UploadURL:   getEnv("UPLOAD_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit, err = getEnvInt("LOGIN_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.LoginRateWindow, err = getEnvInt("LOGIN_RATE_WINDOW", 60); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters, got %d", len(cfg.SecretKey))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	if cfg.LoginRateLimit < 1 {
		return nil, fmt.Errorf("LOGIN_RATE_LIMIT must be positive, got %d", cfg.LoginRateLimit)
	}
	if cfg.LoginRateWindow < 1 {
		return nil, fmt.Errorf("LOGIN_RATE_WINDOW must be positive, got %d", cfg.LoginRateWindow)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

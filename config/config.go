package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port             string
	DatabaseURL      string
	RedisAddr        string
	AccessTokenKey   string
	PaymentSecretKey string
}

// Load reads configuration from a .env file (when present) and the
// environment. Missing secrets are a startup error, not something to limp
// along without.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		slog.Info("Loaded configuration from .env file")
	}

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		DatabaseURL:      os.Getenv("DB_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		AccessTokenKey:   os.Getenv("ACCESS_TOKEN_SECRET"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_URL is required but not set")
	}
	if cfg.AccessTokenKey == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required but not set")
	}
	if cfg.PaymentSecretKey == "" {
		return nil, fmt.Errorf("PAYMENT_SECRET_KEY is required but not set")
	}

	return cfg, nil
}

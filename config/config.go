package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultTokenTTL is the validity window of an issued admin token.
const DefaultTokenTTL = 8 * time.Hour

// Config holds all environment-driven settings.
type Config struct {
	Port          string
	DBPath        string
	AdminUser     string
	AdminPass     string
	AdminPassHash string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Load reads configuration from the environment. ADMIN_USER, JWT_SECRET
// and one of ADMIN_PASS / ADMIN_PASS_HASH are required; everything else
// has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		DBPath:        os.Getenv("DB_PATH"),
		AdminUser:     os.Getenv("ADMIN_USER"),
		AdminPass:     os.Getenv("ADMIN_PASS"),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      DefaultTokenTTL,
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data.sqlite"
	}

	if cfg.AdminUser == "" {
		return nil, fmt.Errorf("ADMIN_USER is not set")
	}
	if cfg.AdminPass == "" && cfg.AdminPassHash == "" {
		return nil, fmt.Errorf("neither ADMIN_PASS nor ADMIN_PASS_HASH is set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

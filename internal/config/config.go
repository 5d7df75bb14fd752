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
	defaultPort         = "8080"
	defaultDatabaseURL  = "homepro.db"
	defaultTokenTTL     = "24h"
	defaultReadTimeout  = "15s"
	defaultWriteTimeout = "15s"
	defaultJWTSecret    = "change-me-jwt-secret"
)

type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AutoMigrate  bool
}

// Load reads .env when present and builds the runtime config from the
// environment with development defaults. The default JWT secret is refused
// outside dev.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(envOrDefault("APP_ENV", "dev")),
		Port:        envOrDefault("PORT", defaultPort),
		DatabaseURL: envOrDefault("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   envOrDefault("JWT_SECRET", defaultJWTSecret),
	}

	var err error
	if cfg.TokenTTL, err = parseDuration("TOKEN_TTL", defaultTokenTTL); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = parseDuration("HTTP_READ_TIMEOUT", defaultReadTimeout); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = parseDuration("HTTP_WRITE_TIMEOUT", defaultWriteTimeout); err != nil {
		return nil, err
	}

	cfg.AutoMigrate, _ = strconv.ParseBool(envOrDefault("AUTO_MIGRATE", "true"))

	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
	}

	return cfg, nil
}

func parseDuration(name, def string) (time.Duration, error) {
	raw := envOrDefault(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

func envOrDefault(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

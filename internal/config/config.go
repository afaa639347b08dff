package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// DBURL is the Postgres connection string. Optional in development
	// (the in-memory store is used instead), required in production.
	DBURL string
	Addr  string
	Env   string
}

func (c Config) Production() bool { return c.Env == EnvProduction }

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBURL: os.Getenv("DB_URL"),
		Addr:  ":8080",
		Env:   EnvDevelopment,
	}

	if port := os.Getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return Config{}, fmt.Errorf("PORT must be a number, got %q", port)
		}
		cfg.Addr = ":" + port
	}

	switch env := os.Getenv("APP_ENV"); env {
	case "", EnvDevelopment:
	case EnvProduction:
		cfg.Env = EnvProduction
	default:
		return Config{}, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, env)
	}

	if cfg.Production() && cfg.DBURL == "" {
		return Config{}, errors.New("DB_URL is required in production")
	}
	return cfg, nil
}

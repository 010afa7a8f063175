// Package config loads the backend configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the backend.
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	DBPath           string        `env:"DB_PATH" envDefault:"data/pennywise.db"`
	GinMode          string        `env:"GIN_MODE" envDefault:"release"`
	LogFormat        string        `env:"LOG_FORMAT"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool          `env:"ENABLE_PPROF"`
	EnableMetrics    bool          `env:"ENABLE_METRICS"`
	JWTSecret        string        `env:"JWT_SECRET,required"`
	JWTValidity      time.Duration `env:"JWT_VALIDITY" envDefault:"24h"`
}

// Load reads the configuration from the environment. A .env file is
// loaded first when present, explicitly set variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

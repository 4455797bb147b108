package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig

	Server struct {
		// Port the HTTP API listens on
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Origins allowed by the CORS middleware
		CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	}

	// Log level understood by logrus (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional JSON fixture, applied only when the schema is reset
	SeedFile string `env:"SEED_FILE"`
}

type DatabaseConfig struct {
	// Either "sqlite" or "postgres"
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`

	// Data source name handed to the driver
	DSN string `env:"DB_DSN" envDefault:"rentals.db?_foreign_keys=on"`

	// 0 picks the driver default: 1 for sqlite, 10 for postgres
	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"0"`

	// Drop and recreate every table on startup
	ResetSchema bool `env:"DB_RESET_SCHEMA" envDefault:"false"`
}

// LoadConfig reads an optional .env file and then the process environment
func LoadConfig() (*Config, error) {
	// A missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

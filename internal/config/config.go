// Package config loads process configuration from environment variables
// (optionally via a .env file), the way the rest of the retrieval pack does.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load populates cfg from environment variables, loading a .env file first
// if one is present. A missing .env file is not an error.
func Load[T any](cfg T) error {
	_ = godotenv.Load()
	return env.Parse(cfg)
}

// ServerConfig controls the TCP listener and the optional admin feed.
type ServerConfig struct {
	Port      int    `env:"LOB_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOB_LOG_LEVEL" envDefault:"info"`
	AdminAddr string `env:"LOB_ADMIN_ADDR" envDefault:""`
}

// BotConfig controls a cmd/bot process connecting to a running server.
type BotConfig struct {
	ServerAddr string `env:"LOB_SERVER_ADDR" envDefault:"127.0.0.1:8080"`
	Symbol     string `env:"LOB_SYMBOL" envDefault:"AAPL"`
	LogLevel   string `env:"LOB_LOG_LEVEL" envDefault:"info"`
}

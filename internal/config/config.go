// Package config builds the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort      = 3000
	DefaultPagesDir  = "pages"
	DefaultPublicDir = "public"
	DefaultLogLevel  = "info"
)

// Config is built once in main and handed to the server.
type Config struct {
	Port      int
	PagesDir  string // HTML pages and 404.html
	PublicDir string // assets served under /public/
	LogLevel  string
}

// Load reads a .env file if there is one, then the environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:      portFromEnv("PORT", DefaultPort),
		PagesDir:  getEnvOrDefault("PAGES_DIR", DefaultPagesDir),
		PublicDir: getEnvOrDefault("PUBLIC_DIR", DefaultPublicDir),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.PagesDir == "" {
		return errors.New("pages directory is empty")
	}
	if c.PublicDir == "" {
		return errors.New("public directory is empty")
	}
	return nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// portFromEnv falls back to defaultValue when the variable is unset,
// not an integer, or not a valid TCP port.
func portFromEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return defaultValue
	}
	return port
}

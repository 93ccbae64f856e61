// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token goes to the
// OS keychain via internal/keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"blogctl/cli/internal/xdg"
)

// DefaultAPIBaseURL is used when no base URL is configured anywhere.
const DefaultAPIBaseURL = "http://localhost:8000/api"

// DefaultPageSize matches the blog feed page size served by the API.
const DefaultPageSize = 9

// Environment variables that override the stored configuration.
const (
	EnvAPIBaseURL = "BLOG_API_URL"
	EnvLogLevel   = "BLOG_LOG_LEVEL"
	EnvPageSize   = "BLOG_PAGE_SIZE"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	LogLevel   string `json:"log_level"`
	PageSize   int    `json:"page_size"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. A .env file in
// the working directory is honored, and environment variables always win
// over the stored file.
func Load() (Config, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	c := Config{
		APIBaseURL: DefaultAPIBaseURL,
		LogLevel:   "info",
		PageSize:   DefaultPageSize,
	}

	p, err := path()
	if err != nil {
		return applyEnv(c), nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(c), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return applyEnv(c), nil
}

// applyEnv overlays environment overrides onto c.
func applyEnv(c Config) Config {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageSize = n
		}
	}
	return c
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

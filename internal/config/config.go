// Package config loads application settings from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Browse BrowseConfig `yaml:"browse"`
	Store  StoreConfig  `yaml:"store"`
}

// APIConfig configures the player directory client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
}

// BrowseConfig configures player browsing.
type BrowseConfig struct {
	PerPage    int `yaml:"per_page"`
	DebounceMs int `yaml:"debounce_ms"`
}

// StoreConfig configures the persisted store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in settings: balldontlie as the directory,
// 10 players per page, a 500 ms search debounce, and a local store dir.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://api.balldontlie.io/v1",
		},
		Browse: BrowseConfig{
			PerPage:    10,
			DebounceMs: 500,
		},
		Store: StoreConfig{
			Path: ".courtside",
		},
	}
}

// Load reads settings from the YAML file at path (skipped when absent),
// then applies environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.API.BaseURL = getEnv("COURTSIDE_API_BASE_URL", cfg.API.BaseURL)
	cfg.API.Key = getEnv("BALLDONTLIE_API_KEY", cfg.API.Key)
	cfg.Browse.PerPage = getEnvAsInt("COURTSIDE_PER_PAGE", cfg.Browse.PerPage)
	cfg.Browse.DebounceMs = getEnvAsInt("COURTSIDE_DEBOUNCE_MS", cfg.Browse.DebounceMs)
	cfg.Store.Path = getEnv("COURTSIDE_STORE_PATH", cfg.Store.Path)

	return &cfg, nil
}

// Debounce returns the search quiet period as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Browse.DebounceMs) * time.Millisecond
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

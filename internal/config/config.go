// Package config loads event-finder settings.
//
// Sources are applied in increasing precedence: built-in defaults, an
// optional YAML file, a .env file and the process environment, then command
// line flags (applied by the cli package).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv
const (
	EnvAPIKey   = "SERPAPI_API_KEY"
	EnvEndpoint = "SERPAPI_ENDPOINT"
	EnvLogLevel = "EVENTFINDER_LOG_LEVEL"
)

// Config holds all event-finder configuration.
type Config struct {
	SerpAPI SerpAPIConfig `yaml:"serpapi"`
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type SerpAPIConfig struct {
	APIKey    string        `yaml:"api_key"`
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type SearchConfig struct {
	Location string `yaml:"location"`
	Category string `yaml:"category"`
	Days     int    `yaml:"days"` // default range length from today
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Sort   string `yaml:"sort"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file at path and merges it with defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv loads the given .env files (".env" when none are given) into the
// process environment and overrides settings from it. Missing .env files are
// ignored; variables already set in the environment win over .env values.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		c.SerpAPI.APIKey = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.SerpAPI.Endpoint = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks settings required to run a search
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SerpAPI.APIKey) == "" {
		return fmt.Errorf("missing SerpApi API key: set %s, serpapi.api_key or --api-key", EnvAPIKey)
	}
	if c.SerpAPI.Endpoint == "" {
		return fmt.Errorf("serpapi.endpoint cannot be empty")
	}
	if c.SerpAPI.Timeout <= 0 {
		return fmt.Errorf("serpapi.timeout must be positive, got %s", c.SerpAPI.Timeout)
	}
	if c.Search.Days < 0 {
		return fmt.Errorf("search.days cannot be negative, got %d", c.Search.Days)
	}
	return nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API      APIConfig      `toml:"api"`
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
}

// APIConfig contains Slowdive backend connection settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// DatabaseConfig contains local snapshot database settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// SessionConfig contains local session cache settings.
type SessionConfig struct {
	Path string `toml:"path"`
}

// Environment variables consulted by [ResolveBaseURL], in precedence order.
const (
	EnvAPIURL    = "SLOWDIVE_API_URL"
	EnvDeployURL = "SLOWDIVE_DEPLOY_URL"

	defaultBaseURL = "http://localhost:8000"
)

// ResolveBaseURL picks the backend base URL for this process.
//
// An explicit SLOWDIVE_API_URL override wins; otherwise a platform-provided
// deployment host (SLOWDIVE_DEPLOY_URL, scheme added if missing); otherwise
// the configured base_url; otherwise localhost.
func ResolveBaseURL(config *Config) string {
	if v := os.Getenv(EnvAPIURL); v != "" {
		return v
	}

	if v := os.Getenv(EnvDeployURL); v != "" {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return "https://" + v
		}
		return v
	}

	if config != nil && config.API.BaseURL != "" {
		return config.API.BaseURL
	}

	return defaultBaseURL
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Package config handles CLI configuration loading.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	// Model is the model identifier sent with the request.
	Model string `yaml:"model"`
	// Backend selects the client implementation ("sdk" or "rest").
	Backend string `yaml:"backend"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`
	// APIKey is an explicit key, used only when the variable is unset or empty.
	APIKey string `yaml:"api_key,omitempty"`
	// BaseURL overrides the service endpoint.
	BaseURL string `yaml:"base_url,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.promptrun/config.yaml
// - Windows: %USERPROFILE%\.promptrun\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".promptrun", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns an empty config without error.
// Returns an error only if the file exists but cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

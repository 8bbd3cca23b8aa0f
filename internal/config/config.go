// Package config loads the application configuration from
// ~/.draftkit/config.yaml with environment variable overrides. A missing
// config file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application-level settings.
type Config struct {
	// LibraryDir is the root of the local template library and export area.
	LibraryDir string `yaml:"library_dir,omitempty"`
	// APIBaseURL is the base URL of the firm's backend, empty to disable
	// remote catalog sync.
	APIBaseURL string `yaml:"api_base_url,omitempty"`
	// RequestTimeout bounds each backend request.
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RequestTimeout: 10 * time.Second,
	}
}

// Load reads the config file under baseDir (or the default library dir) and
// applies environment overrides. Missing file returns defaults.
func Load(baseDir string) (*Config, error) {
	cfg := Default()

	if baseDir == "" {
		baseDir = os.Getenv("DRAFTKIT_DIR")
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".draftkit")
	}
	cfg.LibraryDir = baseDir

	data, err := os.ReadFile(filepath.Join(baseDir, "config.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if cfg.LibraryDir == "" {
		cfg.LibraryDir = baseDir
	}
	if url := os.Getenv("DRAFTKIT_API_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	return cfg, nil
}

// Save writes the config file back to the library directory.
func (c *Config) Save() error {
	if c.LibraryDir == "" {
		return fmt.Errorf("config has no library directory")
	}
	if err := os.MkdirAll(c.LibraryDir, 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(filepath.Join(c.LibraryDir, "config.yaml"), data, 0644)
}

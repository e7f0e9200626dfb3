// Package config loads gpi configuration from YAML files with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for gpi.
type Config struct {
	// Extension is the source file extension indexed by the assistant.
	Extension string `yaml:"extension" env:"GPI_EXTENSION"`

	// Include restricts indexing to files matching these glob patterns
	// (relative to the project root). Empty means all source files.
	Include []string `yaml:"include" env:"GPI_INCLUDE"`

	// Exclude drops files matching these glob patterns.
	Exclude []string `yaml:"exclude" env:"GPI_EXCLUDE"`

	// ExcludeDirs are directory names never descended into. When empty the
	// scanner's defaults apply.
	ExcludeDirs []string `yaml:"exclude_dirs" env:"GPI_EXCLUDE_DIRS"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"GPI_VERBOSE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Extension: ".py",
	}
}

// globalConfigFilePath returns the global config file path (~/.gpi/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gpi/config.yaml"
	}
	return filepath.Join(home, ".gpi", "config.yaml")
}

// projectConfigFilePath returns the project-level config file path (./.gpi/config.yaml)
func projectConfigFilePath() string {
	return ".gpi/config.yaml"
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.gpi/config.yaml)
// 3. Global config (~/.gpi/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	projectConfigPath := projectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path, creating
// parent directories when needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// List-valued variables are comma-separated.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GPI_EXTENSION"); v != "" {
		cfg.Extension = v
	}
	if v := os.Getenv("GPI_INCLUDE"); v != "" {
		cfg.Include = splitList(v)
	}
	if v := os.Getenv("GPI_EXCLUDE"); v != "" {
		cfg.Exclude = splitList(v)
	}
	if v := os.Getenv("GPI_EXCLUDE_DIRS"); v != "" {
		cfg.ExcludeDirs = splitList(v)
	}
	if v := os.Getenv("GPI_VERBOSE"); v != "" {
		cfg.Verbose = v == "true" || v == "1" || v == "yes"
	}
}

// Validate checks that the configuration has valid required fields.
func (c *Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("extension must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with a dot, got %q", c.Extension)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
)

// Config represents the complete configuration for jsonkit
type Config struct {
	Indent     int    `yaml:"indent"`
	Dialect    string `yaml:"dialect"`
	SortOrder  string `yaml:"sort_order"`
	DebounceMs int    `yaml:"debounce_ms"`
	LogLevel   string `yaml:"log_level"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:     2,
		Dialect:    string(models.DialectJSON),
		SortOrder:  string(models.Ascending),
		DebounceMs: 1000,
		LogLevel:   "info",
	}
}

// Validate checks config values for consistency
func (c *Config) Validate() error {
	switch models.Dialect(c.Dialect) {
	case models.DialectJSON, models.DialectJSON5:
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid dialect %q", c.Dialect), errors.ErrUnknownDialect)
	}
	switch models.SortOrder(c.SortOrder) {
	case models.Ascending, models.Descending:
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid sort_order %q, expected \"asc\" or \"desc\"", c.SortOrder), nil)
	}
	if c.Indent < 1 {
		return errors.NewConfigError(fmt.Sprintf("indent must be at least 1, got %d", c.Indent), nil)
	}
	if c.DebounceMs < 0 {
		return errors.NewConfigError(fmt.Sprintf("debounce_ms must not be negative, got %d", c.DebounceMs), nil)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults so omitted fields keep sane values
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonkit.yml", ".jsonkit.yaml", "jsonkit.yml", "jsonkit.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Load resolves the effective config: the explicit path if given,
// otherwise a discovered config file, otherwise defaults.
func Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return LoadConfig(explicitPath)
	}
	if found := FindConfigFile(); found != "" {
		return LoadConfig(found)
	}
	return NewConfig(), nil
}

// Package config loads CLI configuration for cornellfmt.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reletz/cornellfmt"
	"github.com/reletz/cornellfmt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for the normalizer CLI.
type Config struct {
	Policy PolicyConfig `yaml:"policy"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// PolicyConfig selects the normalization rule set.
type PolicyConfig struct {
	MaxConsecutiveBlankLines int  `yaml:"maxConsecutiveBlankLines"` // 1 or 2 (0 = default)
	DistinctSummarySection   bool `yaml:"distinctSummarySection"`   // summary only via [!summary]
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout / in place)
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error" (empty = info)
	JSON  bool   `yaml:"json"`  // JSON handler instead of text
}

// ToPolicy converts the config fields into a library Policy,
// applying the default blank-line cap for zero.
func (c *Config) ToPolicy() cornellfmt.Policy {
	limit := c.Policy.MaxConsecutiveBlankLines
	if limit == 0 {
		limit = cornellfmt.DefaultBlankLineCap
	}
	return cornellfmt.Policy{
		MaxConsecutiveBlankLines: limit,
		DistinctSummarySection:   c.Policy.DistinctSummarySection,
	}
}

// Validate checks the policy bounds and log level.
func (c *Config) Validate() error {
	if err := c.ToPolicy().Validate(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
}

// DefaultConfig returns the canonical rule set with quiet logging defaults.
func DefaultConfig() *Config {
	return &Config{
		Policy: PolicyConfig{MaxConsecutiveBlankLines: cornellfmt.DefaultBlankLineCap},
		Output: OutputConfig{DefaultDir: ""},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteDefault writes the default configuration to path, refusing to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yamlutil.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/cornellfmt/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "cornellfmt", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

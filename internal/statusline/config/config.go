// Package config provides YAML configuration support for the statusline
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	appconfig "github.com/young1lin/cc-sakura-line/internal/config"
)

// FileName is the config file looked up under .claude/
const FileName = "sakura-line.yaml"

// DefaultCacheTTL is how long a fetched contribution count stays fresh
const DefaultCacheTTL = 5 * time.Minute

// Config represents the statusline configuration
type Config struct {
	Display       DisplayConfig       `yaml:"display"`
	Format        FormatConfig        `yaml:"format"`
	Contributions ContributionsConfig `yaml:"contributions"`
}

// DisplayConfig controls sizing and which fields are drawn
type DisplayConfig struct {
	Fill     bool     `yaml:"fill"`
	Width    int      `yaml:"width"`    // 0 = detect
	Reserved int      `yaml:"reserved"` // subtracted from the detected width
	Hide     []string `yaml:"hide"`
}

// FormatConfig controls formatting options
type FormatConfig struct {
	TimeFormat string `yaml:"timeFormat"` // "12h" or "24h"
}

// ContributionsConfig controls the GitHub contribution counter
type ContributionsConfig struct {
	User     string        `yaml:"user"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// Paths returns the config files consulted by Load, highest priority first:
// 1. Project-level: <projectDir>/.claude/sakura-line.yaml
// 2. Global: ~/.claude/sakura-line.yaml
func Paths(projectDir string) []string {
	var paths []string
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".claude", FileName))
	}
	if dir := appconfig.ClaudeDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	return paths
}

// Load loads configuration from the first existing file in Paths, falling back
// to built-in defaults when there is none
func Load(projectDir string) (*Config, error) {
	for _, path := range Paths(projectDir) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFile(path)
		}
	}
	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Display.Width < 0 {
		return nil, fmt.Errorf("display.width must not be negative, got %d", cfg.Display.Width)
	}
	if cfg.Display.Reserved < 0 {
		return nil, fmt.Errorf("display.reserved must not be negative, got %d", cfg.Display.Reserved)
	}

	if cfg.Format.TimeFormat != "12h" && cfg.Format.TimeFormat != "24h" {
		cfg.Format.TimeFormat = "24h"
	}
	if cfg.Contributions.CacheTTL <= 0 {
		cfg.Contributions.CacheTTL = DefaultCacheTTL
	}

	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			TimeFormat: "24h",
		},
		Contributions: ContributionsConfig{
			CacheTTL: DefaultCacheTTL,
		},
	}
}

// ShouldShow returns false for fields listed under display.hide
func (c *Config) ShouldShow(field string) bool {
	for _, h := range c.Display.Hide {
		if h == field {
			return false
		}
	}
	return true
}

// GetTimeFormat returns the time format
func (c *Config) GetTimeFormat() string {
	if c.Format.TimeFormat == "" {
		return "24h"
	}
	return c.Format.TimeFormat
}

// GetCacheTTL returns the contribution cache freshness window
func (c *Config) GetCacheTTL() time.Duration {
	if c.Contributions.CacheTTL <= 0 {
		return DefaultCacheTTL
	}
	return c.Contributions.CacheTTL
}

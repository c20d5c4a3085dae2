// Package config loads gita's settings from <home>/config.yaml, a .env
// file and GITA_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultThinkDelay = 1500 * time.Millisecond
	DefaultLogLevel   = "info"
	configFileName    = "config.yaml"
)

type Config struct {
	// Home holds the database, log file and config file.
	Home string `yaml:"-"`

	DatabasePath string `yaml:"database"`
	CatalogPath  string `yaml:"catalog"`
	LogPath      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`

	// ThinkDelay is the pause before an Ask answer is shown.
	ThinkDelay    time.Duration `yaml:"-"`
	ThinkDelayRaw string        `yaml:"think_delay"`

	// Ephemeral keeps favorites and settings in memory only.
	Ephemeral bool `yaml:"ephemeral"`
}

// DefaultHome returns ~/.gita, or .gita in the working directory when the
// home directory cannot be resolved.
func DefaultHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gita"
	}
	return filepath.Join(homeDir, ".gita")
}

// Load resolves the configuration. home may be empty, in which case
// GITA_HOME or DefaultHome is used. A missing config or .env file is not
// an error; an unreadable or malformed one is.
func Load(home string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if home == "" {
		home = os.Getenv("GITA_HOME")
	}
	if home == "" {
		home = DefaultHome()
	}

	cfg := &Config{Home: home}

	raw, err := os.ReadFile(cfg.Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GITA_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("GITA_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("GITA_THINK_DELAY"); v != "" {
		c.ThinkDelayRaw = v
	}
	if v := os.Getenv("GITA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) resolve() error {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(c.Home, "gita.db")
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(c.Home, "gita.log")
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	c.ThinkDelay = DefaultThinkDelay
	if c.ThinkDelayRaw != "" {
		d, err := time.ParseDuration(c.ThinkDelayRaw)
		if err != nil {
			return fmt.Errorf("invalid think_delay %q: %w", c.ThinkDelayRaw, err)
		}
		if d < 0 {
			return fmt.Errorf("invalid think_delay %q: must not be negative", c.ThinkDelayRaw)
		}
		c.ThinkDelay = d
	}
	return nil
}

// Path is the location of the config file.
func (c *Config) Path() string {
	return filepath.Join(c.Home, configFileName)
}

// Save writes the file-backed fields to <home>/config.yaml. A resolved
// ThinkDelay is written out as think_delay.
func (c *Config) Save() error {
	if c.ThinkDelay > 0 || c.ThinkDelayRaw == "" {
		c.ThinkDelayRaw = c.ThinkDelay.String()
	}
	if err := os.MkdirAll(c.Home, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Home, err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path(), raw, 0644)
}

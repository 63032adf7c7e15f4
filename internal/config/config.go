// Package config loads swatch settings from YAML and the environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/swatch/internal/config/colors"
)

// Default document the sync placeholder is written to
const (
	DefaultSyncCollection = "cities"
	DefaultSyncDocument   = "LA"
)

// DefaultToastDuration is how long a toast stays on screen
const DefaultToastDuration = 2 * time.Second

// ColorScheme is re-exported so callers need a single import
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	DatabasePath  string        `yaml:"database_path"`
	LogLevel      string        `yaml:"log_level"`
	ToastDuration time.Duration `yaml:"toast_duration"`
	Sync          SyncConfig    `yaml:"sync"`
	KeyMappings   KeyMappings   `yaml:"key_mappings"`
	ColorScheme   ColorScheme   `yaml:"theme"`
}

// SyncConfig points at the remote document store
type SyncConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	ProjectID       string `yaml:"project_id"`
	Collection      string `yaml:"collection"`
	Document        string `yaml:"document"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads config.yaml from the user's config directory, falling back to
// defaults when it does not exist, then applies environment overrides.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	cfg := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(cfg)
	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// loadThemeFile merges the theme from SWATCH_THEME_FILE if set
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv("SWATCH_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		cfg.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	override(&c.DatabasePath, "SWATCH_DB_PATH")
	override(&c.LogLevel, "SWATCH_LOG_LEVEL")
	override(&c.Sync.CredentialsFile, "FIREBASE_CREDENTIALS_PATH")
	override(&c.Sync.ProjectID, "FIREBASE_PROJECT_ID")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "swatch", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "swatch", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ToastDuration <= 0 {
		c.ToastDuration = DefaultToastDuration
	}
	if c.Sync.Collection == "" {
		c.Sync.Collection = DefaultSyncCollection
	}
	if c.Sync.Document == "" {
		c.Sync.Document = DefaultSyncDocument
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

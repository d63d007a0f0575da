// Package config loads and saves the user's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "tablero"

// Environment overrides
const (
	EnvDBPath   = "TABLERO_DB_PATH"
	EnvIDFormat = "TABLERO_ID_FORMAT"
	EnvTheme    = "TABLERO_THEME_FILE"
)

// DefaultActivationDistance is how far (in cells) the pointer must travel
// before a press becomes a drag.
const DefaultActivationDistance = 2

// ErrInvalidConfig is returned when a loaded config has values that cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	Drag        DragConfig    `yaml:"drag"`
	Storage     StorageConfig `yaml:"storage"`
	IDs         IDConfig      `yaml:"ids"`
	Log         LogConfig     `yaml:"log"`
}

// DragConfig tunes pointer dragging
type DragConfig struct {
	ActivationDistance int `yaml:"activation_distance"`
}

// StorageConfig points at the board database
type StorageConfig struct {
	Path string `yaml:"path"`
}

// IDConfig selects the identifier format for new columns and tasks
type IDConfig struct {
	Format string `yaml:"format"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := Default()
		applyEnv(cfg)
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path; a missing file yields defaults
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("no config file, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	loadThemeFile(&cfg)
	applyEnv(&cfg)

	// Fill in any missing values with defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports values that cannot be used
func (c *Config) Validate() error {
	if c.Drag.ActivationDistance < 1 {
		return fmt.Errorf("%w: drag.activation_distance must be at least 1, got %d",
			ErrInvalidConfig, c.Drag.ActivationDistance)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Save writes the config to Path
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns where the config file lives
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDBPath returns where the board lives when storage.path is unset
func DefaultDBPath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "board.db")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("."+appName, "board.db")
	}
	return filepath.Join(homeDir, "."+appName, "board.db")
}

// applyEnv lets the environment override file values
func applyEnv(c *Config) {
	if path := os.Getenv(EnvDBPath); path != "" {
		c.Storage.Path = path
	}
	if format := os.Getenv(EnvIDFormat); format != "" {
		c.IDs.Format = format
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Drag.ActivationDistance == 0 {
		c.Drag.ActivationDistance = DefaultActivationDistance
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultDBPath()
	}
	if c.IDs.Format == "" {
		c.IDs.Format = "sequence"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

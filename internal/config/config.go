package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables read on top of the config file.
const (
	EnvThemeFile = "TABLERO_THEME_FILE"
	EnvDBPath    = "TABLERO_DB_PATH"
	EnvLogLevel  = "TABLERO_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Board       BoardConfig        `yaml:"board"`
	Drag        DragConfig         `yaml:"drag"`
	Storage     StorageConfig      `yaml:"storage"`
	Log         LogConfig          `yaml:"log"`
}

// BoardConfig holds board behaviour settings.
type BoardConfig struct {
	CompletionColumn string `yaml:"completion_column"`
	// Haptics is a pointer so an explicit false survives applyDefaults.
	Haptics *bool `yaml:"haptics"`
}

// HapticsEnabled reports the effective haptics setting.
func (b BoardConfig) HapticsEnabled() bool {
	return b.Haptics == nil || *b.Haptics
}

// DragConfig holds gesture thresholds.
type DragConfig struct {
	MouseActivationDistance  int           `yaml:"mouse_activation_distance"`
	TouchDelay               time.Duration `yaml:"touch_delay"`
	TouchTolerance           int           `yaml:"touch_tolerance"`
	RollbackOnInvalidRelease bool          `yaml:"rollback_on_invalid_release"`
	EdgeScrollMargin         int           `yaml:"edge_scroll_margin"`
	// Pointer is "mouse" (distance activation) or "touch" (hold to drag).
	Pointer string `yaml:"pointer"`
}

// Pointer values.
const (
	PointerMouse = "mouse"
	PointerTouch = "touch"
)

// PointerType maps Pointer to the activation rule. Unknown values are mouse.
func (d DragConfig) PointerType() dnd.PointerType {
	if strings.EqualFold(d.Pointer, PointerTouch) {
		return dnd.PointerTouch
	}
	return dnd.PointerMouse
}

// Activation converts the thresholds for the gesture activator.
func (d DragConfig) Activation() dnd.ActivationConfig {
	return dnd.ActivationConfig{
		MouseDistance:  d.MouseActivationDistance,
		TouchDelay:     d.TouchDelay,
		TouchTolerance: d.TouchTolerance,
	}
}

// StorageConfig holds the database location. Empty means the default path.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level, defaulting to debug.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelDebug
	}
	return lvl
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from TABLERO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file not readable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("theme file not valid yaml", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv layers environment overrides onto the file values.
func applyEnv(config *Config) {
	loadThemeFile(config)
	if p := os.Getenv(EnvDBPath); p != "" {
		config.Storage.Path = p
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		config.Log.Level = lvl
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return LoadFile("")
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. An empty path or a missing file yields
// the defaults, still subject to environment overrides.
func LoadFile(path string) (*Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path.
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

// Path returns where Load looks for the config file.
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Board.CompletionColumn == "" {
		c.Board.CompletionColumn = models.DefaultCompletionColumn
	}
	if c.Board.Haptics == nil {
		on := true
		c.Board.Haptics = &on
	}

	if c.Drag.MouseActivationDistance <= 0 {
		c.Drag.MouseActivationDistance = 2
	}
	if c.Drag.TouchDelay <= 0 {
		c.Drag.TouchDelay = 250 * time.Millisecond
	}
	if c.Drag.TouchTolerance <= 0 {
		c.Drag.TouchTolerance = 5
	}
	if c.Drag.EdgeScrollMargin <= 0 {
		c.Drag.EdgeScrollMargin = 3
	}
	if c.Drag.Pointer == "" {
		c.Drag.Pointer = PointerMouse
	}

	if c.Log.Level == "" {
		c.Log.Level = "debug"
	}
}

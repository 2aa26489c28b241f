package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/dnd"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "tablero")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "n", defaults.AddTask)
	assert.Equal(t, "/", defaults.Search)
	assert.Equal(t, "b", defaults.ToggleSidebar)
	assert.Equal(t, "t", defaults.ToggleTheme)
	assert.Equal(t, "esc", defaults.Escape)
	assert.Equal(t, "H", defaults.MoveTaskLeft)
	assert.Equal(t, "L", defaults.MoveTaskRight)

	for i, b := range defaults.bindings() {
		assert.NotEmpty(t, *b, "binding %d has no default", i)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, colors.PresetDark, cfg.ColorScheme.Preset)
	assert.Equal(t, "done", cfg.Board.CompletionColumn)
	assert.True(t, cfg.Board.HapticsEnabled())
	assert.Equal(t, 2, cfg.Drag.MouseActivationDistance)
	assert.Equal(t, 250*time.Millisecond, cfg.Drag.TouchDelay)
	assert.Equal(t, 5, cfg.Drag.TouchTolerance)
	assert.False(t, cfg.Drag.RollbackOnInvalidRelease)
	assert.Equal(t, 3, cfg.Drag.EdgeScrollMargin)
	assert.Equal(t, dnd.PointerMouse, cfg.Drag.PointerType())
	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadConfigWithFile(t *testing.T) {
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	writeConfig(t, `key_mappings:
  quit: "x"
  add_task: "a"
theme:
  preset: light
board:
  completion_column: shipped
  haptics: false
drag:
  mouse_activation_distance: 4
  touch_delay: 400ms
  rollback_on_invalid_release: true
  pointer: touch
storage:
  path: /tmp/board.db
log:
  level: warn
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "a", cfg.KeyMappings.AddTask)
	assert.Equal(t, "e", cfg.KeyMappings.EditTask, "unset keys keep defaults")
	assert.Equal(t, colors.PresetLight, cfg.ColorScheme.Preset)
	assert.Equal(t, colors.Light().Background, cfg.ColorScheme.Background)
	assert.False(t, cfg.ColorScheme.IsDark)
	assert.Equal(t, "shipped", cfg.Board.CompletionColumn)
	assert.False(t, cfg.Board.HapticsEnabled())
	assert.Equal(t, 4, cfg.Drag.MouseActivationDistance)
	assert.Equal(t, 400*time.Millisecond, cfg.Drag.TouchDelay)
	assert.Equal(t, 5, cfg.Drag.TouchTolerance)
	assert.True(t, cfg.Drag.RollbackOnInvalidRelease)
	assert.Equal(t, dnd.PointerTouch, cfg.Drag.PointerType())
	assert.Equal(t, "/tmp/board.db", cfg.Storage.Path)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())

	act := cfg.Drag.Activation()
	assert.Equal(t, 4, act.MouseDistance)
	assert.Equal(t, 400*time.Millisecond, act.TouchDelay)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	writeConfig(t, "key_mappings: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	writeConfig(t, "storage:\n  path: /from/file.db\n")
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDBPath, "/from/env.db")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.Storage.Path)
	assert.Equal(t, slog.LevelError, cfg.Log.SlogLevel())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.KeyMappings.Quit = "Q"
	cfg.Drag.RollbackOnInvalidRelease = true
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Q", loaded.KeyMappings.Quit)
	assert.True(t, loaded.Drag.RollbackOnInvalidRelease)
	assert.Equal(t, cfg.Board, loaded.Board)
}

func TestConfigPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tablero", "config.yaml"), p)
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "info"}.SlogLevel())
}

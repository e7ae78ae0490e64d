package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at fresh temp dirs
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvHome, filepath.Join(tempDir, "home"))
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv("LISTA_THEME_FILE", "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "lista")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddTask)
	assert.Equal(t, "space", defaults.ToggleDone)
	assert.Equal(t, "tab", defaults.SwitchView)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, filepath.Join(tempDir, "home", "lista.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(tempDir, "home", "logs", "lista.log"), cfg.Logging.File)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultDeadlineFormat, cfg.Display.DeadlineFormat)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `database:
  path: /tmp/elsewhere.db
logging:
  level: warn
  max_backups: 7
key_mappings:
  quit: "x"
  add_task: "n"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddTask)
	// untouched keys fall back to defaults
	assert.Equal(t, "e", cfg.KeyMappings.EditTask)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Logging.MaxBackups)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Logging.MaxSizeMB)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "key_mappings: [unterminated\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "database:\n  path: /tmp/from-file.db\n")
	t.Setenv(EnvDB, "/tmp/from-env.db")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.Database.Path)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LISTA_TEST_ONLY_VALUE=from-dotenv\n"), 0o644))
	t.Setenv("LISTA_TEST_ONLY_VALUE", "")
	require.NoError(t, os.Unsetenv("LISTA_TEST_ONLY_VALUE"))

	require.NoError(t, LoadEnv(envFile, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-dotenv", os.Getenv("LISTA_TEST_ONLY_VALUE"))
}

func TestThemeFileMerges(t *testing.T) {
	isolate(t)
	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themeFile, []byte("theme:\n  accent: \"#123456\"\n"), 0o644))
	t.Setenv("LISTA_THEME_FILE", themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, DefaultColorScheme().Title, cfg.ColorScheme.Title)
}

func TestMonochromePreset(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()

	assert.Equal(t, MonochromeColorScheme().Accent, scheme.Accent)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "ctrl+q"
	require.NoError(t, cfg.Save())

	path, err := Path()
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ctrl+q", loaded.KeyMappings.Quit)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/cli"
	listaconfig "github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/testutil"
	clitest "github.com/thenoetrevino/lista/internal/testutil/cli"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("LISTA_HOME", filepath.Join(dir, "data"))
	t.Setenv("LISTA_DB", "")
	t.Setenv("LISTA_LOG_LEVEL", "")
	t.Setenv("LISTA_THEME_FILE", "")
	return filepath.Join(dir, "lista", "config.yaml")
}

func TestPath(t *testing.T) {
	want := isolate(t)

	res, err := clitest.ExecuteCLICommandWithConfig(t, listaconfig.Default(), PathCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, res.Stdout)
	assert.Equal(t, want, result["path"])
	assert.Equal(t, false, result["exists"])
}

func TestInit(t *testing.T) {
	path := isolate(t)

	_, err := clitest.ExecuteCLICommandWithConfig(t, listaconfig.Default(), InitCmd(), []string{"--quiet"})
	require.NoError(t, err)
	require.FileExists(t, path)

	cfg, err := listaconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, listaconfig.DefaultDeadlineFormat, cfg.Display.DeadlineFormat)
	assert.Equal(t, "a", cfg.KeyMappings.AddTask)

	t.Run("existing file is kept", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("display:\n  deadline_format: \"2006-01-02\"\n"), 0o644))

		_, err := clitest.ExecuteCLICommandWithConfig(t, listaconfig.Default(), InitCmd(), nil)
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

		cfg, err := listaconfig.Load()
		require.NoError(t, err)
		assert.Equal(t, "2006-01-02", cfg.Display.DeadlineFormat)
	})

	t.Run("force overwrites", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommandWithConfig(t, listaconfig.Default(), InitCmd(), []string{"--force"})
		require.NoError(t, err)

		cfg, err := listaconfig.Load()
		require.NoError(t, err)
		assert.Equal(t, listaconfig.DefaultDeadlineFormat, cfg.Display.DeadlineFormat)
	})
}

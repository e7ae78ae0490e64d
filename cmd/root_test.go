package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config, data and logs at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("LISTA_HOME", filepath.Join(dir, "data"))
	t.Setenv("LISTA_DB", "")
	t.Setenv("LISTA_LOG_LEVEL", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"task", "priority", "db", "export", "config"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("db"))
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestEndToEnd_AddThenList(t *testing.T) {
	dir := isolate(t)

	_, err := run(t, "task", "add", "--name", "Buy milk", "--description", "2%", "--deadline", "2025-01-01 10:00", "--json")
	require.NoError(t, err)

	out, err := run(t, "task", "list", "--json")
	require.NoError(t, err)

	var resp struct {
		Success bool `json:"success"`
		Tasks   []struct {
			ID          int    `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)

	var found bool
	for _, task := range resp.Tasks {
		if task.Name == "Buy milk" {
			found = true
			assert.Positive(t, task.ID)
			assert.Equal(t, "2%", task.Description)
		}
	}
	assert.True(t, found, "added task not listed")

	assert.FileExists(t, filepath.Join(dir, "data", "lista.db"))
}

func TestEndToEnd_DBFlagOverridesPath(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "custom.db")

	out, err := run(t, "--db", dbPath, "db", "path")
	require.NoError(t, err)
	assert.Contains(t, out, dbPath)
}

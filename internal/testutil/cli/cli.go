// Package cli runs cobra commands against a test store
package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/app"
	listacli "github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/config"
)

// Result is what a command wrote
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes a CLI command with a test app instance
// The app is injected through the command context, so commands never open the real store.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (Result, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, nil)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin wired to in
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, in io.Reader) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil")
	}

	return execute(listacli.WithApp(context.Background(), testApp), cmd, args, in)
}

// ExecuteCLICommandWithConfig runs cmd with only a config attached, so commands that
// need the store open the one cfg names
func ExecuteCLICommandWithConfig(t *testing.T, cfg *config.Config, cmd *cobra.Command, args []string) (Result, error) {
	t.Helper()
	return execute(listacli.WithConfig(context.Background(), cfg), cmd, args, nil)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, in io.Reader) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if in != nil {
		cmd.SetIn(in)
	}
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)

	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

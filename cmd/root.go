// Package cmd assembles the lista command tree
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	configcmd "github.com/thenoetrevino/lista/internal/cli/config"
	"github.com/thenoetrevino/lista/internal/cli/db"
	"github.com/thenoetrevino/lista/internal/cli/export"
	"github.com/thenoetrevino/lista/internal/cli/priority"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/cli/task"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/launcher"
	"github.com/thenoetrevino/lista/internal/logging"
)

// logCloser is set by setup and released once the command finishes
var logCloser io.Closer

// NewRootCmd builds the lista command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lista",
		Short: "lista - a to-do list for the terminal",
		Long: `lista keeps a to-do list in a local SQLite file.

Run without a subcommand to open the interactive list.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
				logCloser = nil
			}
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().String("db", "", "Database file (overrides config and LISTA_DB)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Load environment variables from this file")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(priority.PriorityCmd())
	rootCmd.AddCommand(db.DBCmd())
	rootCmd.AddCommand(export.ExportCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	return rootCmd
}

// setup loads .env, the config file and logging, then hands the config to subcommands
func setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnv(envFile); err != nil {
		return cli.WithExitCode(cli.ExitUsage, fmt.Errorf("failed to load %s: %w", envFile, err))
	}

	cfg, err := config.Load()
	if err != nil {
		return cli.WithExitCode(cli.ExitDataErr, fmt.Errorf("failed to load config: %w", err))
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	closer, err := logging.Init(cfg.Logging)
	if err != nil {
		// Logging is best effort; keep slog's default handler
		slog.Warn("Failed to initialize logging", "error", err)
	} else {
		logCloser = closer
	}

	styles.Init(cfg.ColorScheme)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}()

	return launcher.Launch(ctx, cliInstance.App, cliInstance.Config)
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}

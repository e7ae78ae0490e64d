// Package db implements the "lista db" subcommands
package db

import (
	"bufio"
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// DBCmd returns the db parent command
func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the local database file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// PathCmd returns the db path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the location of the database file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			// only report the path; opening the store would create it
			path := cli.ConfigFromContext(cmd.Context()).Database.Path
			if a, ok := cli.AppFromContext(cmd.Context()); ok {
				path = a.DBPath()
			}

			if formatter.JSON {
				return formatter.WriteJSON(map[string]interface{}{
					"success": true,
					"path":    path,
				})
			}
			formatter.Printf("%s\n", path)
			return nil
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ResetCmd returns the db reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the database with the bundled copy",
		Long: `Replace the database with a fresh copy of the bundled one.
Every task is deleted. The old file is kept next to the new one with a .bak suffix.
--json and --quiet never prompt, so they require --force.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.NewFormatter(cmd)

	if !force && (formatter.JSON || formatter.Quiet) {
		return formatter.Fail(cli.ExitUsage, "FORCE_REQUIRED",
			errors.New("reset deletes every task and cannot prompt with --json or --quiet"),
			"Re-run with --force")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if !force {
		formatter.Printf("Delete every task in %s? (y/N): ", cliInstance.App.DBPath())
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.Reset(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "RESET_ERROR", err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"path":    cliInstance.App.DBPath(),
			"backup":  cliInstance.App.DBPath() + ".bak",
		})
	}

	formatter.Printf("✓ Database reset (previous copy kept at %s.bak)\n", cliInstance.App.DBPath())
	return nil
}

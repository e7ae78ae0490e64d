// Package config implements the "lista config" subcommands
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	listaconfig "github.com/thenoetrevino/lista/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where lista reads its config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			path, err := listaconfig.Path()
			if err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "Set XDG_CONFIG_HOME")
			}
			_, statErr := os.Stat(path)
			exists := statErr == nil

			if formatter.JSON {
				return formatter.WriteJSON(map[string]interface{}{
					"success": true,
					"path":    path,
					"exists":  exists,
				})
			}
			if exists || formatter.Quiet {
				formatter.Printf("%s\n", path)
			} else {
				formatter.Printf("%s (not created, defaults in use)\n", path)
			}
			return nil
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file filled with the defaults",
		Long: `Write a config file filled with the defaults, ready for editing.
An existing file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.NewFormatter(cmd)

	path, err := listaconfig.Path()
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "Set XDG_CONFIG_HOME")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
			fmt.Errorf("config file already exists: %s", path), "Re-run with --force to overwrite")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(cli.ExitError, "CONFIG_STAT_ERROR", err, "")
	}

	if err := listaconfig.Default().Save(); err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err, "")
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"path":    path,
		})
	}
	if formatter.Quiet {
		return nil
	}
	formatter.Printf("✓ Wrote %s\n", path)
	return nil
}

// Package priority implements the "lista priority" subcommands
package priority

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// PriorityCmd returns the priority parent command
func PriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Inspect priority levels",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}

// ListCmd returns the priority list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List priority levels",
		Long:  "List the priority levels bundled with the database, in storage order.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	priorities := cliInstance.App.TaskService.ListPriorities(ctx)

	if formatter.Quiet {
		for _, p := range priorities {
			formatter.Printf("%d\n", p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":    true,
			"priorities": priorities,
		})
	}

	if len(priorities) == 0 {
		formatter.Printf("No priority levels found\n")
		return nil
	}

	for _, p := range priorities {
		formatter.Printf("  %s %s\n", styles.LabelStyle.Render("["+strconv.Itoa(p.ID)+"]"), p.Level)
	}
	return nil
}

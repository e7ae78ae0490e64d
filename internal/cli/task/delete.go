package task

import (
	"bufio"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, formatter, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err, "")
	}

	svc := cliInstance.App.TaskService
	task, ok := svc.Get(ctx, taskID)
	if !ok {
		return taskNotFound(formatter, taskID)
	}

	// Ask for confirmation unless forced or running for a script
	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete task #%d: '%s'? (y/N): ", taskID, task.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if !svc.Delete(ctx, taskID) {
		return formatter.Fail(cli.ExitError, "DELETE_ERROR",
			errors.New("task could not be deleted"), "See the log file for details")
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task_id": taskID,
		})
	}

	formatter.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil
}

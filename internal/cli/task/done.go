package task

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. Completed tasks move to the Completed view.

Examples:
  lista task done 42
  lista task done 42 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetDone(cmd, args, true)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ReopenCmd returns the task reopen subcommand
func ReopenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reopen <task_id>",
		Short: "Mark a completed task as active again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetDone(cmd, args, false)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSetDone(cmd *cobra.Command, args []string, done bool) error {
	ctx := cmd.Context()

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

	if task.Done != done && !svc.SetDone(ctx, taskID, done) {
		return formatter.Fail(cli.ExitError, "TASK_UPDATE_ERROR",
			errors.New("task could not be saved"), "See the log file for details")
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task_id": taskID,
			"done":    done,
		})
	}

	if done {
		formatter.Printf("✓ Task %d marked as completed\n", taskID)
	} else {
		formatter.Printf("✓ Task %d marked as active\n", taskID)
	}
	return nil
}

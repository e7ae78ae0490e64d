package task

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Update a task",
		Long: `Update the fields of an existing task. Only the flags given are changed.

Examples:
  lista task update 3 --name="Buy oat milk"
  lista task update 3 --priority=low --deadline=2025-02-01
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New task name")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("priority", "", "New priority level name or ID")
	cmd.Flags().String("deadline", "", "New deadline, e.g. 2025-01-01 10:00")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	cliInstance, formatter, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err, "")
	}

	if !flags.Changed("name") && !flags.Changed("description") &&
		!flags.Changed("priority") && !flags.Changed("deadline") {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES",
			errors.New("nothing to update"),
			"Pass at least one of --name, --description, --priority, --deadline")
	}

	svc := cliInstance.App.TaskService
	task, ok := svc.Get(ctx, taskID)
	if !ok {
		return taskNotFound(formatter, taskID)
	}
	priorities := svc.ListPriorities(ctx)

	if flags.Changed("name") {
		task.Name, _ = flags.GetString("name")
	}
	if flags.Changed("description") {
		value, _ := flags.GetString("description")
		task.Description, err = cli.ReadDescription(cmd, value)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
		}
	}
	if flags.Changed("priority") {
		value, _ := flags.GetString("priority")
		task.PriorityID, err = cli.ParsePriority(priorities, value)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
				"Use 'lista priority list' to see available levels")
		}
	}
	if flags.Changed("deadline") {
		value, _ := flags.GetString("deadline")
		task.Deadline, err = cli.ParseDeadline(value, cliInstance.App.Location())
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "INVALID_DEADLINE", err, "")
		}
	}

	if err := taskservice.Validate(task); err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TASK", err, "")
	}

	if !svc.Update(ctx, task) {
		return formatter.Fail(cli.ExitError, "TASK_UPDATE_ERROR",
			errors.New("task could not be saved"), "See the log file for details")
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task":    taskJSON(task, priorities),
		})
	}

	formatter.Printf("✓ Task %d updated successfully\n", task.ID)
	return nil
}

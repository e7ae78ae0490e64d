package task

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/models"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task.

Examples:
  # Simple task, first priority level, due one month from now
  lista task add --name="Buy milk"

  # JSON output for agents
  lista task add --name="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(lista task add --name="Buy milk" --quiet)

  # Full example with all options
  lista task add \
    --name="Buy milk" \
    --description="2%" \
    --priority=high \
    --deadline="2025-01-01 10:00"
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", "", "Priority level name or ID (defaults to the first level)")
	cmd.Flags().String("deadline", "", "Deadline, e.g. 2025-01-01 10:00 (defaults to one month from now)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	deadlineFlag, _ := cmd.Flags().GetString("deadline")

	cliInstance, formatter, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	svc := cliInstance.App.TaskService
	loc := cliInstance.App.Location()

	description, err := cli.ReadDescription(cmd, descriptionFlag)
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
	}

	priorities := svc.ListPriorities(ctx)
	if len(priorities) == 0 {
		return formatter.Fail(cli.ExitError, "PRIORITY_FETCH_ERROR",
			errors.New("no priority levels available"),
			"Run 'lista db reset' to restore the bundled database")
	}

	priorityID := priorities[0].ID
	if priorityFlag != "" {
		priorityID, err = cli.ParsePriority(priorities, priorityFlag)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
				"Use 'lista priority list' to see available levels")
		}
	}

	deadline := models.DefaultDeadline(time.Now().In(loc))
	if deadlineFlag != "" {
		deadline, err = cli.ParseDeadline(deadlineFlag, loc)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "INVALID_DEADLINE", err, "")
		}
	}

	task := &models.Task{
		Name:        name,
		Description: description,
		PriorityID:  priorityID,
		Deadline:    deadline,
	}

	if err := taskservice.Validate(task); err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TASK", err, "")
	}

	if !svc.Insert(ctx, task) {
		return formatter.Fail(cli.ExitError, "TASK_CREATE_ERROR",
			errors.New("task could not be saved"), "See the log file for details")
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task":    taskJSON(task, priorities),
		})
	}

	formatter.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Name, task.ID)
	formatter.Printf("  Priority: %s\n", models.PriorityLabel(priorities, task.PriorityID))
	formatter.Printf("  Deadline: %s\n", task.Deadline.Format(cliInstance.Config.Display.DeadlineFormat))
	return nil
}

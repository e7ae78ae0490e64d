package task

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet {
		return formatter.Success(task)
	}

	priorities := svc.ListPriorities(ctx)

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task":    taskJSON(task, priorities),
		})
	}

	formatter.Printf("%s %s\n", styles.Checkbox(task.Done), styles.TitleStyle.Render(task.Name))
	formatter.Printf("%s %d\n", styles.LabelStyle.Render("ID:"), task.ID)
	formatter.Printf("%s %s\n", styles.LabelStyle.Render("Priority:"),
		styles.ValueStyle.Render(models.PriorityLabel(priorities, task.PriorityID)))
	if !task.Deadline.IsZero() {
		formatter.Printf("%s %s\n", styles.LabelStyle.Render("Deadline:"),
			styles.ValueStyle.Render(task.Deadline.Format(cliInstance.Config.Display.DeadlineFormat)))
	}
	if task.Description != "" {
		formatter.Printf("\n%s\n", task.Description)
	}
	return nil
}

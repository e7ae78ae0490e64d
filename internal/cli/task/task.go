// Package task implements the "lista task" subcommands
package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(ReopenCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// openCLI builds the formatter for cmd and opens the store, reporting failures through it
func openCLI(cmd *cobra.Command) (*cli.CLI, *cli.OutputFormatter, error) {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, formatter, nil
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// taskNotFound reports a missing task with exit code ExitNotFound
func taskNotFound(formatter *cli.OutputFormatter, taskID int) error {
	return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
		fmt.Errorf("task %d not found", taskID),
		"Use 'lista task list' to see available tasks")
}

// formatTaskLine renders one task for human-readable listings
func formatTaskLine(t *models.Task, priorities []*models.Priority, deadlineLayout string) string {
	name := t.Name
	if t.Done {
		name = styles.DoneStyle.Render(name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s #%d %s", styles.Checkbox(t.Done), t.ID, name)

	details := []string{models.PriorityLabel(priorities, t.PriorityID)}
	if !t.Deadline.IsZero() {
		details = append(details, "due "+t.Deadline.Format(deadlineLayout))
	}
	b.WriteString(styles.SubtitleStyle.Render("  (" + strings.Join(details, ", ") + ")"))
	return b.String()
}

// taskJSON is the shape tasks take in --json output
func taskJSON(t *models.Task, priorities []*models.Priority) map[string]interface{} {
	var deadline interface{}
	if !t.Deadline.IsZero() {
		deadline = t.Deadline
	}
	return map[string]interface{}{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"priority":    map[string]interface{}{"id": t.PriorityID, "level": models.PriorityLabel(priorities, t.PriorityID)},
		"deadline":    deadline,
		"done":        t.Done,
	}
}

package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by completion state.

Examples:
  lista task list
  lista task list --state=active --sort=deadline
  lista task list --search=milk --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("state", "all", "Filter by state: all, active, completed")
	cmd.Flags().String("search", "", "Only tasks whose name or description contains this text")
	cmd.Flags().String("sort", "id", "Order: id or deadline")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	state, _ := cmd.Flags().GetString("state")
	search, _ := cmd.Flags().GetString("search")
	sortBy, _ := cmd.Flags().GetString("sort")

	cliInstance, formatter, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	svc := cliInstance.App.TaskService
	tasks := svc.ListAll(ctx)

	switch strings.ToLower(state) {
	case "all", "":
	case "active", "open":
		tasks = taskservice.FilterByState(tasks, false)
	case "completed", "done":
		tasks = taskservice.FilterByState(tasks, true)
	default:
		return formatter.Fail(cli.ExitUsage, "INVALID_STATE",
			fmt.Errorf("invalid state '%s'", state), "Valid states are: all, active, completed")
	}

	tasks = taskservice.Search(tasks, search)

	switch strings.ToLower(sortBy) {
	case "id", "":
	case "deadline":
		tasks = taskservice.SortByDeadline(tasks)
	default:
		return formatter.Fail(cli.ExitUsage, "INVALID_SORT",
			fmt.Errorf("invalid sort '%s'", sortBy), "Valid orders are: id, deadline")
	}

	if formatter.Quiet {
		for _, t := range tasks {
			formatter.Printf("%d\n", t.ID)
		}
		return nil
	}

	priorities := svc.ListPriorities(ctx)

	if formatter.JSON {
		out := make([]map[string]interface{}, len(tasks))
		for i, t := range tasks {
			out[i] = taskJSON(t, priorities)
		}
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"tasks":   out,
		})
	}

	if len(tasks) == 0 {
		formatter.Printf("No tasks found\n")
		return nil
	}

	formatter.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		formatter.Printf("%s\n", formatTaskLine(t, priorities, cliInstance.Config.Display.DeadlineFormat))
	}
	return nil
}


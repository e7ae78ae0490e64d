// Package export implements "lista export"
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	icalexport "github.com/thenoetrevino/lista/internal/export"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks for calendar apps",
		Long: `Write every task as an iCalendar VTODO.

Examples:
  lista export > lista.ics
  lista export --output=lista.ics --state=active
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("format", "ics", "Output format (only ics is supported)")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().String("state", "all", "Filter by state: all, active, completed")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	state, _ := cmd.Flags().GetString("state")
	formatter := cli.NewFormatter(cmd)

	if !strings.EqualFold(format, "ics") {
		return formatter.Fail(cli.ExitUsage, "INVALID_FORMAT",
			fmt.Errorf("unsupported format '%s'", format), "Valid formats are: ics")
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

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return formatter.Fail(cli.ExitError, "OUTPUT_ERROR", err, "")
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("Error closing export file", "error", err)
			}
		}()
		w = f
	}

	if err := icalexport.WriteICS(w, tasks, svc.ListPriorities(ctx), time.Now()); err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "")
	}

	if output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d tasks to %s\n", len(tasks), output)
	}
	return nil
}

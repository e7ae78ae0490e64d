package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// deadlineLayouts are the extra shapes accepted on the command line
var deadlineLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParsePriority resolves a priority given by ID or by level name (case-insensitive)
func ParsePriority(priorities []*models.Priority, value string) (int, error) {
	value = strings.TrimSpace(value)

	if id, err := strconv.Atoi(value); err == nil {
		for _, p := range priorities {
			if p.ID == id {
				return id, nil
			}
		}
		return 0, fmt.Errorf("invalid priority '%s' (must be: %s)", value, priorityChoices(priorities))
	}

	for _, p := range priorities {
		if strings.EqualFold(p.Level, value) {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("invalid priority '%s' (must be: %s)", value, priorityChoices(priorities))
}

func priorityChoices(priorities []*models.Priority) string {
	names := make([]string, len(priorities))
	for i, p := range priorities {
		names[i] = strings.ToLower(p.Level)
	}
	return strings.Join(names, ", ")
}

// ParseDeadline accepts the stored ISO form plus "2006-01-02 15:04" and a bare date
// (midnight). Values are wall-clock times in loc.
func ParseDeadline(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if t, err := database.ParseDeadline(text, loc); err == nil {
		return t, nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q (use YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DDTHH:MM)", text)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ParseTaskID parses a positional task ID argument
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %s", arg)
	}
	return id, nil
}

// NewFormatter reads the --json and --quiet flags and binds output to the command's writers
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

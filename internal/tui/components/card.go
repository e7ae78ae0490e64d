package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/models"
)

// CardProps describes one task card
type CardProps struct {
	Task           *models.Task
	PriorityLabel  string
	DeadlineLayout string
	Selected       bool
	Expanded       bool
	Width          int
	Now            time.Time
}

// RenderTaskCard renders a task as a bordered card. Collapsed cards show the name,
// due date and a short description preview; expanded cards add the rendered
// description, priority and deadline.
func RenderTaskCard(p CardProps) string {
	style := CardStyle
	if p.Selected {
		style = SelectedCardStyle
	}
	// border and padding on both sides
	innerWidth := max(p.Width-6, 10)

	checkbox := "[ ]"
	title := CardTitleStyle.Render(p.Task.Name)
	if p.Task.Done {
		checkbox = "[x]"
		title = DoneTitleStyle.Render(p.Task.Name)
	}

	header := checkbox + " " + title
	if due := dueText(p); due != "" {
		gap := max(innerWidth-lipgloss.Width(header)-lipgloss.Width(due), 1)
		header += strings.Repeat(" ", gap) + due
	}

	lines := []string{header}

	if p.Expanded {
		lines = append(lines,
			"",
			RenderDescription(p.Task.Description, innerWidth),
			"",
			MetaLabelStyle.Render("Priority: ")+p.PriorityLabel,
			MetaLabelStyle.Render("Deadline: ")+deadlineText(p.Task.Deadline, p.DeadlineLayout),
		)
	} else if preview := DescriptionPreview(p.Task.Description, innerWidth, 2); preview != "" {
		lines = append(lines, MetaStyle.Render(preview))
	}

	return style.Width(max(p.Width-2, 12)).Render(strings.Join(lines, "\n"))
}

func dueText(p CardProps) string {
	if p.Task.Deadline.IsZero() {
		return ""
	}
	text := p.Task.Deadline.Format(p.DeadlineLayout)
	if !p.Task.Done && !p.Now.IsZero() && p.Task.Deadline.Before(p.Now) {
		return OverdueStyle.Render(text)
	}
	return MetaStyle.Render(text)
}

func deadlineText(t time.Time, layout string) string {
	if t.IsZero() {
		return "none"
	}
	return t.Format(layout)
}

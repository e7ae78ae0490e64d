package components

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/lista/internal/models"
)

const layout = "02.01.2006 15:04"

func testTask() *models.Task {
	return &models.Task{
		ID:          1,
		Name:        "Buy milk",
		Description: "2% please, the big bottle",
		PriorityID:  1,
		Deadline:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDescriptionPreview(t *testing.T) {
	assert.Equal(t, "", DescriptionPreview("   ", 20, 2))
	assert.Equal(t, "first line", DescriptionPreview("first line\nsecond line", 40, 2))

	long := strings.Repeat("word ", 30)
	preview := DescriptionPreview(long, 20, 2)
	assert.Len(t, strings.Split(preview, "\n"), 2)
	assert.True(t, strings.HasSuffix(preview, "…"))
}

func TestRenderDescription_Empty(t *testing.T) {
	assert.Contains(t, RenderDescription("", 40), "No description")
}

func TestRenderTaskCard_Collapsed(t *testing.T) {
	out := RenderTaskCard(CardProps{
		Task:           testTask(),
		PriorityLabel:  "High",
		DeadlineLayout: layout,
		Width:          60,
	})

	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "01.01.2025 10:00")
	assert.Contains(t, out, "2% please")
	assert.NotContains(t, out, "Priority:")
}

func TestRenderTaskCard_Expanded(t *testing.T) {
	task := testTask()
	task.Done = true

	out := RenderTaskCard(CardProps{
		Task:           task,
		PriorityLabel:  models.UnknownPriority,
		DeadlineLayout: layout,
		Expanded:       true,
		Width:          60,
	})

	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Priority:")
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "Deadline:")
}

func TestRenderTabs(t *testing.T) {
	out := RenderTabs([]Tab{{Title: "Active Todos", Count: 3}, {Title: "Completed Todos", Count: 1}}, 0, 80, "")
	assert.Contains(t, out, "Active Todos (3)")
	assert.Contains(t, out, "Completed Todos (1)")
	assert.Equal(t, 80, lipgloss.Width(strings.Split(out, "\n")[1]))
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 40, Left: "2 tasks", Help: "? help"})
	assert.Contains(t, out, "2 tasks")
	assert.Contains(t, out, "? help")
	assert.Equal(t, 40, lipgloss.Width(out))
}

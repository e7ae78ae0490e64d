package task

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/lista/internal/models"
)

// FilterByState keeps the tasks whose completion state equals done, preserving order
func FilterByState(tasks []*models.Task, done bool) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Done == done {
			out = append(out, t)
		}
	}
	return out
}

// Search keeps the tasks whose name or description contains query, case-insensitively.
// An empty query returns tasks unchanged.
func Search(tasks []*models.Task, query string) []*models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tasks
	}

	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

// SortByDeadline orders tasks by deadline, earliest first. Tasks without a deadline go last;
// ties keep storage order.
func SortByDeadline(tasks []*models.Task) []*models.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b *models.Task) int {
		switch {
		case a.Deadline.IsZero() && b.Deadline.IsZero():
			return 0
		case a.Deadline.IsZero():
			return 1
		case b.Deadline.IsZero():
			return -1
		}
		return a.Deadline.Compare(b.Deadline)
	})
	return out
}

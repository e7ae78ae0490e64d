package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/lista/internal/models"
)

func sampleTasks() []*models.Task {
	return []*models.Task{
		{ID: 1, Name: "Buy milk", Description: "2%", Deadline: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "File taxes", Description: "before April", Done: true, Deadline: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Call mom"},
		{ID: 4, Name: "Renew passport", Done: true, Deadline: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(tasks []*models.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilterByState(t *testing.T) {
	tasks := sampleTasks()
	assert.Equal(t, []int{1, 3}, ids(FilterByState(tasks, false)))
	assert.Equal(t, []int{2, 4}, ids(FilterByState(tasks, true)))
	assert.Empty(t, FilterByState(nil, true))
}

func TestSearch(t *testing.T) {
	tasks := sampleTasks()
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Search(tasks, "")))
	assert.Equal(t, []int{1}, ids(Search(tasks, "MILK")))
	assert.Equal(t, []int{2}, ids(Search(tasks, "april")))
	assert.Empty(t, Search(tasks, "nothing"))
}

func TestSortByDeadline(t *testing.T) {
	tasks := sampleTasks()
	sorted := SortByDeadline(tasks)

	assert.Equal(t, []int{2, 4, 1, 3}, ids(sorted))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(tasks), "input must not be reordered")
}

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/lista/internal/models"
)

func TestFilter(t *testing.T) {
	assert.Equal(t, "Active Todos", FilterActive.Title())
	assert.Equal(t, "Completed Todos", FilterCompleted.Title())
	assert.False(t, FilterActive.Done())
	assert.True(t, FilterCompleted.Done())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterActive, FilterCompleted.Next())
}

func TestUIState_SetFilterResetsSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelected(3)

	s.SetFilter(FilterActive)
	assert.Equal(t, 3, s.Selected(), "same filter keeps selection")

	s.SetFilter(FilterCompleted)
	assert.Equal(t, 0, s.Selected())
}

func TestUIState_ClampSelection(t *testing.T) {
	s := NewUIState()

	s.SetSelected(5)
	s.ClampSelection(3)
	assert.Equal(t, 2, s.Selected())

	s.ClampSelection(0)
	assert.Equal(t, 0, s.Selected())

	s.SetSelected(-4)
	assert.Equal(t, 0, s.Selected())
}

func TestUIState_ToggleExpanded(t *testing.T) {
	s := NewUIState()

	assert.False(t, s.IsExpanded(7))
	s.ToggleExpanded(7)
	assert.True(t, s.IsExpanded(7))
	s.ToggleExpanded(7)
	assert.False(t, s.IsExpanded(7))
}

func TestUIState_ContentHeight(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, 5, s.ContentHeight())

	s.SetHeight(40)
	assert.Equal(t, 35, s.ContentHeight())
}

func TestFormState_HasChanges(t *testing.T) {
	s := NewFormState()
	s.Open(0, TaskFormValues{Name: "", PriorityID: 1, Deadline: "01.02.2025 10:00"})

	assert.False(t, s.IsEditing())
	assert.True(t, s.Confirm)
	assert.False(t, s.HasChanges())

	s.Values.Name = "Buy milk"
	assert.True(t, s.HasChanges())

	s.Reset()
	assert.Nil(t, s.Form)
	assert.Zero(t, s.EditingTaskID)
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	_, ok := s.Latest()
	assert.False(t, ok)

	s.Add(LevelInfo, "first")
	s.Add(LevelError, "second")
	assert.True(t, s.HasAny())
	assert.Len(t, s.All(), 2)

	latest, ok := s.Latest()
	assert.True(t, ok)
	assert.Equal(t, "second", latest.Message)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestAppState(t *testing.T) {
	s := NewAppState(nil, []*models.Priority{{ID: 4, Level: "High"}, {ID: 5, Level: "Low"}})

	assert.NotNil(t, s.Tasks())
	assert.Equal(t, 4, s.DefaultPriorityID())
	assert.Equal(t, "Low", s.PriorityLabel(5))
	assert.Equal(t, models.UnknownPriority, s.PriorityLabel(9))

	s.SetPriorities(nil)
	assert.Equal(t, 0, s.DefaultPriorityID())
}

func TestFormState_SetDefaultPriority(t *testing.T) {
	s := NewFormState()
	s.Open(0, TaskFormValues{Deadline: "01.02.2025 10:00"})

	s.SetDefaultPriority(2)
	assert.Equal(t, 2, s.Values.PriorityID)
	assert.False(t, s.HasChanges())

	// a chosen priority is left alone
	s.Values.PriorityID = 3
	s.SetDefaultPriority(1)
	assert.Equal(t, 3, s.Values.PriorityID)
}

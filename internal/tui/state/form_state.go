package state

import "charm.land/huh/v2"

// TaskFormValues are the fields bound to the create/edit dialog
type TaskFormValues struct {
	Name        string
	Description string
	PriorityID  int
	Deadline    string // as typed, parsed on submit
	Done        bool
}

// FormState manages the create/edit dialog.
type FormState struct {
	Form *huh.Form

	// EditingTaskID is 0 while creating a new task
	EditingTaskID int

	// Values are bound by pointer to the huh fields
	Values TaskFormValues

	// Confirm is the answer to the final "Save?" question
	Confirm bool

	// initial is what the form opened with, used to detect edits
	initial TaskFormValues
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Open loads values into the dialog state. taskID is 0 for a new task.
func (s *FormState) Open(taskID int, values TaskFormValues) {
	s.EditingTaskID = taskID
	s.Values = values
	s.initial = values
	s.Confirm = true
}

// SetDefaultPriority fills in a priority when the dialog opened without one.
// It does not count as a user edit.
func (s *FormState) SetDefaultPriority(id int) {
	if s.Values.PriorityID != 0 {
		return
	}
	s.Values.PriorityID = id
	s.initial.PriorityID = id
}

// IsEditing reports whether the dialog edits an existing task
func (s *FormState) IsEditing() bool {
	return s.EditingTaskID != 0
}

// HasChanges reports whether any field differs from what the dialog opened with
func (s *FormState) HasChanges() bool {
	return s.Values != s.initial
}

// Reset clears the dialog
func (s *FormState) Reset() {
	*s = FormState{}
}

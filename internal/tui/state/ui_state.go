package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	FormMode                       // Create/edit dialog with huh
	DeleteConfirmMode              // Confirming task deletion
	DiscardConfirmMode             // Confirming discard of form changes
	HelpMode                       // Displaying help screen
	SearchMode                     // Typing a search query (/)
)

// Filter selects which completion state the list shows
type Filter int

const (
	FilterActive    Filter = iota // open tasks
	FilterCompleted               // completed tasks
)

// Title is the tab label for the filter
func (f Filter) Title() string {
	if f == FilterCompleted {
		return "Completed Todos"
	}
	return "Active Todos"
}

// Done reports the completion state this filter keeps
func (f Filter) Done() bool {
	return f == FilterCompleted
}

// Next cycles Active -> Completed -> Active
func (f Filter) Next() Filter {
	if f == FilterActive {
		return FilterCompleted
	}
	return FilterActive
}

// UIState manages the user interface state.
// This includes selection, expanded cards, terminal dimensions and the current mode.
type UIState struct {
	mode   Mode
	filter Filter

	// selected is the index into the visible task list
	selected int

	// expanded holds the IDs of tasks whose card shows full details
	expanded map[int]bool

	width  int
	height int

	// searchQuery narrows the visible list; empty means no search
	searchQuery string

	sortByDeadline bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:     NormalMode,
		filter:   FilterActive,
		expanded: make(map[int]bool),
	}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Filter returns the active tab
func (s *UIState) Filter() Filter {
	return s.filter
}

// SetFilter switches tabs and resets the selection
func (s *UIState) SetFilter(f Filter) {
	if s.filter != f {
		s.filter = f
		s.selected = 0
	}
}

// Selected returns the index of the selected task in the visible list
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected updates the selected index
func (s *UIState) SetSelected(index int) {
	s.selected = max(index, 0)
}

// ClampSelection keeps the selection inside a list of count items
func (s *UIState) ClampSelection(count int) {
	if count == 0 {
		s.selected = 0
		return
	}
	s.selected = min(max(s.selected, 0), count-1)
}

// IsExpanded reports whether the card for taskID is expanded
func (s *UIState) IsExpanded(taskID int) bool {
	return s.expanded[taskID]
}

// ToggleExpanded flips the card for taskID between collapsed and expanded
func (s *UIState) ToggleExpanded(taskID int) {
	if s.expanded[taskID] {
		delete(s.expanded, taskID)
		return
	}
	s.expanded[taskID] = true
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the task list.
// This is terminal height minus tab bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// SearchQuery returns the current search text
func (s *UIState) SearchQuery() string {
	return s.searchQuery
}

// SetSearchQuery replaces the search text and resets the selection
func (s *UIState) SetSearchQuery(query string) {
	s.searchQuery = query
	s.selected = 0
}

// SortByDeadline reports whether the list is ordered by deadline
func (s *UIState) SortByDeadline() bool {
	return s.sortByDeadline
}

// ToggleSort switches between storage order and deadline order
func (s *UIState) ToggleSort() {
	s.sortByDeadline = !s.sortByDeadline
}

package tui

import (
	"context"
	"slices"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

// fakeService is an in-memory Service
type fakeService struct {
	tasks      []*models.Task
	priorities []*models.Priority
	nextID     int
	fail       bool

	inserted []*models.Task
	updated  []*models.Task
	deleted  []int
}

func newFakeService(tasks ...*models.Task) *fakeService {
	next := 1
	for _, t := range tasks {
		next = max(next, t.ID+1)
	}
	return &fakeService{
		tasks: tasks,
		priorities: []*models.Priority{
			{ID: 1, Level: "High"},
			{ID: 2, Level: "Medium"},
			{ID: 3, Level: "Low"},
		},
		nextID: next,
	}
}

func (f *fakeService) ListAll(context.Context) []*models.Task {
	out := make([]*models.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t.Clone())
	}
	return out
}

func (f *fakeService) ListPriorities(context.Context) []*models.Priority {
	return f.priorities
}

func (f *fakeService) Get(_ context.Context, id int) (*models.Task, bool) {
	i := f.index(id)
	if i < 0 {
		return nil, false
	}
	return f.tasks[i].Clone(), true
}

func (f *fakeService) Insert(_ context.Context, task *models.Task) bool {
	if f.fail {
		return false
	}
	task.ID = f.nextID
	f.nextID++
	f.tasks = append(f.tasks, task.Clone())
	f.inserted = append(f.inserted, task.Clone())
	return true
}

func (f *fakeService) Update(_ context.Context, task *models.Task) bool {
	i := f.index(task.ID)
	if f.fail || i < 0 {
		return false
	}
	f.tasks[i] = task.Clone()
	f.updated = append(f.updated, task.Clone())
	return true
}

func (f *fakeService) Delete(_ context.Context, id int) bool {
	i := f.index(id)
	if f.fail || i < 0 {
		return false
	}
	f.tasks = slices.Delete(f.tasks, i, i+1)
	f.deleted = append(f.deleted, id)
	return true
}

func (f *fakeService) SetDone(_ context.Context, id int, done bool) bool {
	i := f.index(id)
	if f.fail || i < 0 {
		return false
	}
	f.tasks[i].Done = done
	return true
}

func (f *fakeService) Validate(task *models.Task) error {
	return taskservice.Validate(task)
}

func (f *fakeService) index(id int) int {
	return slices.IndexFunc(f.tasks, func(t *models.Task) bool { return t.ID == id })
}

func testTask(id int, name string, done bool) *models.Task {
	return &models.Task{
		ID:          id,
		Name:        name,
		Description: name + " description",
		PriorityID:  1,
		Deadline:    time.Date(2025, 2, id, 10, 0, 0, 0, time.UTC),
		Done:        done,
	}
}

// setupTestModel builds a model over svc with its data already loaded
func setupTestModel(t *testing.T, svc *fakeService) Model {
	t.Helper()

	m := InitialModel(context.Background(), svc, config.Default())
	m.Location = time.UTC
	m.Now = func() time.Time { return fixedNow }

	m = send(t, m, m.Init()())
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

// send runs one message through Update
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// sendCmd runs one message through Update and also returns the command
func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// drain runs a reload command, if any, back through Update
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	if loaded, ok := cmd().(TasksLoadedMsg); ok {
		return send(t, m, loaded)
	}
	return m
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+d":
		return tea.KeyPressMsg(tea.Key{Code: 'd', Mod: tea.ModCtrl})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

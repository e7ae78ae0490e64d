package task

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService seeds a store in a temp dir and wraps it in a Service
func setupTestService(t *testing.T) Service {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "lista.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(database.NewRepository(db), nil)
}

func buyMilk() *models.Task {
	return &models.Task{
		Name:        "Buy milk",
		Description: "2%",
		PriorityID:  1,
		Deadline:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local),
	}
}

// mockStore fails on demand
type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateTask(ctx context.Context, task *models.Task) (int, error) {
	args := m.Called(ctx, task)
	return args.Int(0), args.Error(1)
}

func (m *mockStore) UpdateTask(ctx context.Context, task *models.Task) (int64, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) DeleteTask(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*models.Task)
	return tasks, args.Error(1)
}

func (m *mockStore) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *mockStore) GetAllPriorities(ctx context.Context) ([]*models.Priority, error) {
	args := m.Called(ctx)
	priorities, _ := args.Get(0).([]*models.Priority)
	return priorities, args.Error(1)
}

// ============================================================================
// ROUND TRIP THROUGH A REAL STORE
// ============================================================================

func TestInsert_ListAllContainsTask(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	task := buyMilk()
	require.True(t, svc.Insert(ctx, task))
	assert.Positive(t, task.ID)

	tasks := svc.ListAll(ctx)
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Name)
	assert.Equal(t, "2%", got.Description)
	assert.Equal(t, 1, got.PriorityID)
	assert.False(t, got.Done)
	assert.True(t, got.Deadline.Equal(task.Deadline), "deadline %v != %v", got.Deadline, task.Deadline)
}

func TestInsert_RejectsEmptyName(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	task := buyMilk()
	task.Name = "   "
	assert.False(t, svc.Insert(ctx, task))
	assert.Zero(t, task.ID)
	assert.Empty(t, svc.ListAll(ctx))
}

func TestInsert_UnknownPriorityReturnsFalse(t *testing.T) {
	svc := setupTestService(t)

	task := buyMilk()
	task.PriorityID = 42
	assert.False(t, svc.Insert(context.Background(), task))
}

func TestUpdate(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	a, b := buyMilk(), buyMilk()
	b.Name = "Walk dog"
	require.True(t, svc.Insert(ctx, a))
	require.True(t, svc.Insert(ctx, b))

	edited := a.Clone()
	edited.Name = "Buy oat milk"
	edited.PriorityID = 2
	edited.Done = true
	require.True(t, svc.Update(ctx, edited))

	tasks := svc.ListAll(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy oat milk", tasks[0].Name)
	assert.Equal(t, 2, tasks[0].PriorityID)
	assert.True(t, tasks[0].Done)
	assert.Equal(t, "Walk dog", tasks[1].Name)
	assert.False(t, tasks[1].Done)
}

func TestUpdate_MissingIDReturnsFalse(t *testing.T) {
	svc := setupTestService(t)

	task := buyMilk()
	task.ID = 999
	assert.False(t, svc.Update(context.Background(), task))

	task.ID = 0
	assert.False(t, svc.Update(context.Background(), task), "unsaved task cannot be updated")
}

func TestDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	task := buyMilk()
	require.True(t, svc.Insert(ctx, task))

	assert.True(t, svc.Delete(ctx, task.ID))
	assert.Empty(t, svc.ListAll(ctx))
	assert.False(t, svc.Delete(ctx, task.ID), "deleting twice should fail")
}

func TestSetDone(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	task := buyMilk()
	require.True(t, svc.Insert(ctx, task))

	require.True(t, svc.SetDone(ctx, task.ID, true))
	got, ok := svc.Get(ctx, task.ID)
	require.True(t, ok)
	assert.True(t, got.Done)

	require.True(t, svc.SetDone(ctx, task.ID, false))
	got, _ = svc.Get(ctx, task.ID)
	assert.False(t, got.Done)

	assert.False(t, svc.SetDone(ctx, 777, true))
}

func TestListPriorities_Stable(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	first := svc.ListPriorities(ctx)
	require.NotEmpty(t, first)

	require.True(t, svc.Insert(ctx, buyMilk()))
	assert.Equal(t, first, svc.ListPriorities(ctx))
}

// ============================================================================
// FAILURES STAY BEHIND THE BOUNDARY
// ============================================================================

func TestStoreFailuresBecomeBenignResults(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	store := &mockStore{}
	store.On("CreateTask", mock.Anything, mock.Anything).Return(0, boom)
	store.On("UpdateTask", mock.Anything, mock.Anything).Return(int64(0), boom)
	store.On("DeleteTask", mock.Anything, 1).Return(int64(0), boom)
	store.On("GetAllTasks", mock.Anything).Return(nil, boom)
	store.On("GetAllPriorities", mock.Anything).Return(nil, boom)
	store.On("GetTaskByID", mock.Anything, 1).Return(nil, boom)

	svc := NewService(store, nil)

	task := buyMilk()
	assert.False(t, svc.Insert(ctx, task))
	assert.Zero(t, task.ID)

	task.ID = 1
	assert.False(t, svc.Update(ctx, task))
	assert.False(t, svc.Delete(ctx, 1))
	assert.False(t, svc.SetDone(ctx, 1, true))

	tasks := svc.ListAll(ctx)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	priorities := svc.ListPriorities(ctx)
	assert.NotNil(t, priorities)
	assert.Empty(t, priorities)

	store.AssertExpectations(t)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		task *models.Task
		want error
	}{
		{"valid", buyMilk(), nil},
		{"empty", &models.Task{Name: ""}, ErrEmptyName},
		{"whitespace", &models.Task{Name: " \t"}, ErrEmptyName},
		{"too long", &models.Task{Name: strings.Repeat("x", models.MaxNameLength+1)}, ErrNameTooLong},
		{"multibyte within limit", &models.Task{Name: strings.Repeat("ü", 200)}, nil},
		{"multibyte at limit", &models.Task{Name: strings.Repeat("ß", models.MaxNameLength)}, nil},
		{"multibyte too long", &models.Task{Name: strings.Repeat("ü", models.MaxNameLength+1)}, ErrNameTooLong},
		{"negative priority", &models.Task{Name: "x", PriorityID: -1}, ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.task), tt.want)
		})
	}
}

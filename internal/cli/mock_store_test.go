package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"taskdesk/internal/config"
	"taskdesk/internal/domain"
)

// MockStore implements api.Store for testing command handlers in isolation.
// Unset function fields make the corresponding operation a successful no-op.
type MockStore struct {
	CreateTaskFunc       func(ctx context.Context, name, description string) (*domain.Task, error)
	GetTaskFunc          func(ctx context.Context, id int64) (*domain.Task, error)
	ListTasksFunc        func(ctx context.Context) ([]*domain.Task, error)
	RemoveTaskFunc       func(ctx context.Context, id int64) error
	UpdateTaskStatusFunc func(ctx context.Context, id int64, status string) error
	ClearTasksFunc       func(ctx context.Context) error
}

func (m *MockStore) CreateTask(ctx context.Context, name, description string) (*domain.Task, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, name, description)
	}
	return &domain.Task{ID: 1, Name: name, Description: description, Status: domain.StatusPending}, nil
}

func (m *MockStore) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, id)
	}
	return &domain.Task{ID: id, Name: "task", Status: domain.StatusPending}, nil
}

func (m *MockStore) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) RemoveTask(ctx context.Context, id int64) error {
	if m.RemoveTaskFunc != nil {
		return m.RemoveTaskFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	if m.UpdateTaskStatusFunc != nil {
		return m.UpdateTaskStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockStore) ClearTasks(ctx context.Context) error {
	if m.ClearTasksFunc != nil {
		return m.ClearTasksFunc(ctx)
	}
	return nil
}

func newTestConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.MenuPause = 0
	return cfg
}

// newMockApp builds an App over the mock store with scripted input
func newMockApp(t *testing.T, store *MockStore, input string) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app := NewApp(store, newTestConfig(), strings.NewReader(input), out)
	return app, out
}

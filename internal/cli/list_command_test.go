package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/domain"
)

func TestListCommand_Execute(t *testing.T) {
	t.Run("should report an empty store", func(t *testing.T) {
		store := &MockStore{}
		app, out := newMockApp(t, store, "")

		err := NewListCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "No tasks found")
	})

	t.Run("should render one line per task with status indicators", func(t *testing.T) {
		store := &MockStore{
			ListTasksFunc: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{
					{ID: 1, Name: "Buy milk", Status: domain.StatusPending},
					{ID: 2, Name: "Walk the dog", Status: domain.StatusCompleted},
				}, nil
			},
		}
		app, out := newMockApp(t, store, "")

		err := NewListCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "[ ] [1] Buy milk - Status: Pending")
		assert.Contains(t, out.String(), "[x] [2] Walk the dog - Status: Completed")
	})

	t.Run("should use configured indicators", func(t *testing.T) {
		store := &MockStore{
			ListTasksFunc: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{
					{ID: 1, Name: "Buy milk", Status: domain.StatusCompleted},
				}, nil
			},
		}
		app, out := newMockApp(t, store, "")
		app.config.Display.CompletedIndicator = "DONE"

		err := NewListCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "DONE [1] Buy milk - Status: Completed")
	})
}

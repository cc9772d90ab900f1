package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/domain"
	"taskdesk/internal/validation"
)

func TestAddCommand_Execute(t *testing.T) {
	t.Run("should pass name and description to the store", func(t *testing.T) {
		var gotName, gotDescription string
		store := &MockStore{
			CreateTaskFunc: func(ctx context.Context, name, description string) (*domain.Task, error) {
				gotName, gotDescription = name, description
				return &domain.Task{ID: 7, Name: "Buy milk", Description: description, Status: domain.StatusPending}, nil
			},
		}
		app, out := newMockApp(t, store, "Buy milk\nTwo liters\n")

		err := NewAddCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Buy milk\n", gotName)
		assert.Equal(t, "Two liters\n", gotDescription)
		assert.Contains(t, out.String(), "Added task [7] Buy milk")
	})

	t.Run("should accept an empty description", func(t *testing.T) {
		store := &MockStore{
			CreateTaskFunc: func(ctx context.Context, name, description string) (*domain.Task, error) {
				return &domain.Task{ID: 1, Name: "Walk the dog", Description: domain.DefaultDescription, Status: domain.StatusPending}, nil
			},
		}
		app, out := newMockApp(t, store, "Walk the dog\n\n")

		err := NewAddCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Added task [1] Walk the dog")
	})

	t.Run("should propagate a store rejection", func(t *testing.T) {
		ve := validation.NewValidationError()
		ve.AddRequiredError("task_name")
		store := &MockStore{
			CreateTaskFunc: func(ctx context.Context, name, description string) (*domain.Task, error) {
				return nil, ve
			},
		}
		app, out := newMockApp(t, store, "\n\n")

		err := NewAddCommand(app).Execute(context.Background())

		require.Error(t, err)
		assert.True(t, validation.IsValidationError(err))
		assert.NotContains(t, out.String(), "Added task")
	})

	t.Run("should print details when verbose", func(t *testing.T) {
		store := &MockStore{}
		app, out := newMockApp(t, store, "Buy milk\nTwo liters\n")
		app.config.Application.Verbose = true

		err := NewAddCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Description:")
		assert.Contains(t, out.String(), "Status:")
	})
}

package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/errors"
)

func TestRemoveCommand_Execute(t *testing.T) {
	t.Run("should remove the task with the entered id", func(t *testing.T) {
		var gotID int64
		store := &MockStore{
			RemoveTaskFunc: func(ctx context.Context, id int64) error {
				gotID = id
				return nil
			},
		}
		app, out := newMockApp(t, store, "3\n")

		err := NewRemoveCommand(app).Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), gotID)
		assert.Contains(t, out.String(), "Removed task 3")
	})

	t.Run("should reject a non-numeric id before touching the store", func(t *testing.T) {
		called := false
		store := &MockStore{
			RemoveTaskFunc: func(ctx context.Context, id int64) error {
				called = true
				return nil
			},
		}
		app, _ := newMockApp(t, store, "abc\n")

		err := NewRemoveCommand(app).Execute(context.Background())

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		assert.Contains(t, err.Error(), "whole number")
		assert.False(t, called)
	})

	t.Run("should propagate not found from the store", func(t *testing.T) {
		store := &MockStore{
			RemoveTaskFunc: func(ctx context.Context, id int64) error {
				return errors.NewNotFoundError("task", "999")
			},
		}
		app, out := newMockApp(t, store, "999\n")

		err := NewRemoveCommand(app).Execute(context.Background())

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
		assert.NotContains(t, out.String(), "Removed task")
	})
}

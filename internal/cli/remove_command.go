package cli

import (
	"context"
)

// RemoveCommand handles the remove-task menu action
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute prompts for a task id and removes the matching task
func (c *RemoveCommand) Execute(ctx context.Context) error {
	id, err := c.app.promptID("Enter the id of the task to remove: ")
	if err != nil {
		return err
	}

	if err := c.app.store.RemoveTask(ctx, id); err != nil {
		return err
	}

	c.app.printf("Removed task %d\n", id)
	return nil
}

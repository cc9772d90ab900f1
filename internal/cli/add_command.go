package cli

import (
	"context"
)

// AddCommand handles the add-task menu action
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute prompts for a name and optional description and creates the task.
// An empty description is allowed; the store substitutes its placeholder.
func (c *AddCommand) Execute(ctx context.Context) error {
	name, err := c.app.promptLine("Enter task name: ")
	if err != nil {
		return err
	}

	description, err := c.app.promptLine("Enter task description (optional): ")
	if err != nil {
		return err
	}

	task, err := c.app.store.CreateTask(ctx, name, description)
	if err != nil {
		return err
	}

	c.app.printf("Added task [%d] %s\n", task.ID, task.Name)
	if c.app.config.Application.Verbose {
		c.app.printf("  Description: %s\n", task.Description)
		c.app.printf("  Status: %s\n", task.Status)
	}
	return nil
}

package cli

import (
	"context"
)

// ClearCommand handles the clear-all-tasks menu action
type ClearCommand struct {
	app *App
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{app: app}
}

// Execute empties the task list. Clearing an empty list succeeds quietly.
func (c *ClearCommand) Execute(ctx context.Context) error {
	if err := c.app.store.ClearTasks(ctx); err != nil {
		return err
	}

	c.app.println("All tasks cleared")
	return nil
}

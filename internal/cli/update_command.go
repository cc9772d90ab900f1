package cli

import (
	"context"
	"fmt"
	"strings"

	"taskdesk/internal/domain"
)

// UpdateStatusCommand handles the update-status menu action
type UpdateStatusCommand struct {
	app  *App
	list *ListCommand
}

// NewUpdateStatusCommand creates a new update-status command handler
func NewUpdateStatusCommand(app *App) *UpdateStatusCommand {
	return &UpdateStatusCommand{
		app:  app,
		list: NewListCommand(app),
	}
}

// Execute shows the current tasks for reference, then prompts for a task id
// and a new status. The status string is validated by the store before any
// task is touched.
func (c *UpdateStatusCommand) Execute(ctx context.Context) error {
	if err := c.list.printTasks(ctx); err != nil {
		return err
	}

	id, err := c.app.promptID("Enter the id of the task to update: ")
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Enter new status (%s or %s): ", domain.StatusPending, domain.StatusCompleted)
	status, err := c.app.promptLine(prompt)
	if err != nil {
		return err
	}

	if err := c.app.store.UpdateTaskStatus(ctx, id, strings.TrimSpace(status)); err != nil {
		return err
	}

	c.app.printf("Task %d is now %s\n", id, strings.TrimSpace(status))
	return nil
}

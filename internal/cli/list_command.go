package cli

import (
	"context"
	"fmt"

	"taskdesk/internal/domain"
)

// ListCommand handles the list-tasks menu action
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute renders all tasks in insertion order
func (c *ListCommand) Execute(ctx context.Context) error {
	return c.printTasks(ctx)
}

// printTasks prints one line per task in the format:
// <indicator> [id] name - Status: status
// The indicator marks completed tasks at a glance.
func (c *ListCommand) printTasks(ctx context.Context) error {
	tasks, err := c.app.store.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		c.app.println("No tasks found")
		return nil
	}

	for _, task := range tasks {
		c.app.println(c.formatTask(task))
	}
	return nil
}

// formatTask renders a single task line
func (c *ListCommand) formatTask(task *domain.Task) string {
	indicator := c.app.config.Display.PendingIndicator
	if task.Status == domain.StatusCompleted {
		indicator = c.app.config.Display.CompletedIndicator
	}
	return fmt.Sprintf("%s [%d] %s - Status: %s", indicator, task.ID, task.Name, task.Status)
}

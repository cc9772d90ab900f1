package cli

import (
	"context"

	"taskdesk/internal/errors"
)

// Command represents a single menu action
type Command interface {
	Execute(ctx context.Context) error
}

// CommandRegistry maps menu choices to their commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry with all menu commands registered
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// The exit choice is handled by the loop itself, not a command.
	registry.Register(choiceAdd, NewAddCommand(app))
	registry.Register(choiceList, NewListCommand(app))
	registry.Register(choiceRemove, NewRemoveCommand(app))
	registry.Register(choiceUpdate, NewUpdateStatusCommand(app))
	registry.Register(choiceClear, NewClearCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(choice string, command Command) {
	r.commands[choice] = command
}

// Execute runs the command registered for the given menu choice
func (r *CommandRegistry) Execute(ctx context.Context, choice string) error {
	command, exists := r.commands[choice]
	if !exists {
		return errors.NewInvalidInputError("selection", choice, "invalid selection")
	}
	return command.Execute(ctx)
}

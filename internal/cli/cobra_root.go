package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdesk/internal/api"
	"taskdesk/internal/config"
	"taskdesk/internal/repository/sqlite"
)

// RootCommand represents the base command for the interactive task desk
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "taskdesk",
		Short: "An interactive console task manager",
		Long: `Task Desk is an interactive console application for tracking a
session-local list of tasks.

Running taskdesk opens a menu-driven loop: add tasks, list them, mark them
Completed, remove them, or clear the whole list. Tasks live in an in-memory
database for the duration of the session; nothing is written to disk.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TASKDESK_DB_QUERY_TIMEOUT              Database query timeout (default: 10s)
    TASKDESK_DB_WRITE_TIMEOUT              Database write timeout (default: 5s)
    TASKDESK_DISPLAY_PENDING_INDICATOR     Marker for pending tasks (default: "[ ]")
    TASKDESK_DISPLAY_COMPLETED_INDICATOR   Marker for completed tasks (default: "[x]")
    TASKDESK_DISPLAY_MENU_PAUSE            Pause before redisplaying the menu (default: 1s)
    TASKDESK_VALIDATION_TASK_NAME_MIN      Min task name length (default: 1)
    TASKDESK_VALIDATION_TASK_NAME_MAX      Max task name length (default: 255)
    TASKDESK_APP_VERBOSE                   Enable verbose output (default: false)
    TASKDESK_DEBUG                         Enable debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before the loop starts
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.config.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := sqlite.NewWithTimeouts(root.config.Database.DSN,
				root.config.Database.QueryTimeout, root.config.Database.WriteTimeout)
			if err != nil {
				return fmt.Errorf("failed to initialize task database: %w", err)
			}
			defer repo.Close()

			store := api.NewWithConfig(repo, root.config)
			app := NewApp(store, root.config, cmd.InOrStdin(), cmd.OutOrStdout())
			return app.Run(cmd.Context())
		},
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TASKDESK_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TASKDESK_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("pending-indicator", "", "Marker for pending tasks (overrides TASKDESK_DISPLAY_PENDING_INDICATOR)")
	flags.String("completed-indicator", "", "Marker for completed tasks (overrides TASKDESK_DISPLAY_COMPLETED_INDICATOR)")
	flags.Duration("menu-pause", -1, "Pause before redisplaying the menu (overrides TASKDESK_DISPLAY_MENU_PAUSE)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TASKDESK_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TASKDESK_VALIDATION_TASK_NAME_MAX)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKDESK_APP_VERBOSE)")
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	// Display configuration
	if indicator, _ := flags.GetString("pending-indicator"); indicator != "" {
		r.config.Display.PendingIndicator = indicator
	}
	if indicator, _ := flags.GetString("completed-indicator"); indicator != "" {
		r.config.Display.CompletedIndicator = indicator
	}
	if pause, _ := flags.GetDuration("menu-pause"); pause >= 0 {
		if r.cmd.PersistentFlags().Changed("menu-pause") {
			r.config.Display.MenuPause = pause
		}
	}

	// Validation configuration
	if minLength, _ := flags.GetInt("task-name-min-length"); minLength > 0 {
		r.config.Validation.TaskNameMinLength = minLength
	}
	if maxLength, _ := flags.GetInt("task-name-max-length"); maxLength > 0 {
		r.config.Validation.TaskNameMaxLength = maxLength
	}

	// Application configuration
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

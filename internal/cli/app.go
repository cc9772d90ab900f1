package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"taskdesk/internal/api"
	"taskdesk/internal/config"
	"taskdesk/internal/errors"
)

// Menu choices as the user types them.
const (
	choiceAdd    = "1"
	choiceList   = "2"
	choiceRemove = "3"
	choiceUpdate = "4"
	choiceClear  = "5"
	choiceExit   = "6"
)

const menuText = `
==== Task Desk ====
1. Add a task
2. List tasks
3. Remove a task
4. Update task status
5. Clear all tasks
6. Exit`

// App represents the interactive console application. It owns the
// read-decide-act loop: print the menu, read a choice, dispatch to the task
// store, report the outcome, repeat until the user exits.
type App struct {
	store        api.Store
	config       *config.Config
	in           *bufio.Reader
	out          io.Writer
	registry     *CommandRegistry
	errorHandler *ErrorHandler
}

// NewApp creates a new interactive application reading from in and writing to out
func NewApp(store api.Store, cfg *config.Config, in io.Reader, out io.Writer) *App {
	app := &App{
		store:        store,
		config:       cfg,
		in:           bufio.NewReader(in),
		out:          out,
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the interactive loop until the user chooses exit or the input
// source is exhausted. Errors raised during a cycle are reported and never
// end the loop.
func (a *App) Run(ctx context.Context) error {
	for {
		a.println(menuText)
		a.print("Choose an option: ")

		line, err := a.readLine()
		if err == io.EOF {
			a.println("")
			a.println("Input closed. Goodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		choice := strings.TrimSpace(line)
		if choice == "" {
			a.println("No input received. Please choose an option.")
			continue
		}

		if choice == choiceExit {
			a.println("Goodbye!")
			return nil
		}

		if err := a.registry.Execute(ctx, choice); err != nil {
			a.printf("Error: %s\n", a.errorHandler.UserMessage(err))
			continue
		}

		a.pause(ctx)
	}
}

// readLine reads one line of input. io.EOF is returned only when no data was
// read at all; a final unterminated line is returned as-is.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// promptLine prints a prompt and reads one line. An exhausted input source
// yields an empty line; only the menu read treats EOF as a signal to stop.
func (a *App) promptLine(prompt string) (string, error) {
	a.print(prompt)
	line, err := a.readLine()
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// promptID prints a prompt and parses the response as a task ID
func (a *App) promptID(prompt string) (int64, error) {
	line, err := a.promptLine(prompt)
	if err != nil {
		return 0, err
	}

	trimmed := strings.TrimSpace(line)
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("task id must be a whole number, got %q", trimmed), err)
	}
	return id, nil
}

// pause waits for the configured menu pause so output stays readable before
// the menu is printed again. Cosmetic only; a cancelled context skips it.
func (a *App) pause(ctx context.Context) {
	if a.config.Display.MenuPause <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(a.config.Display.MenuPause):
	}
}

func (a *App) print(args ...interface{}) {
	fmt.Fprint(a.out, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

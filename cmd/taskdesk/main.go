package main

import (
	"fmt"
	"os"

	"taskdesk/internal/cli"
	"taskdesk/internal/config"
)

func main() {
	// Load configuration from defaults and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The root command wires the in-memory repository, the task store and
	// the interactive loop once flag overrides have been applied.
	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

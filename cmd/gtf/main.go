package main

import (
	"fmt"
	"os"

	"gtf/internal/cli"
	"gtf/internal/cli/commands"
	"gtf/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "gtf [flags] <directory>",
		Short:   "Find and run Go tests with fuzzy selection",
		Long:    `gtf discovers test functions and their subtests in a directory tree and either lists them as go test -run patterns or lets you pick a subset interactively and runs it.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register the commands and flags
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

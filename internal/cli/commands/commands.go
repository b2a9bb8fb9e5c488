package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gtf/internal/cli"
	"gtf/internal/config"
	"gtf/internal/discovery"
	"gtf/internal/execution"
	"gtf/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	List *ListCommand
	Run  *RunCommand

	logger *log.Logger
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gtf"})

	scanner := discovery.NewScanner(cfg.SkipDirs, logger)
	filter := discovery.NewFilter()
	extractor := discovery.NewExtractor(logger)
	formatter := ui.NewFormatter(cfg)
	picker := ui.NewPicker()
	runner := execution.NewRunner(cfg)

	return &Commands{
		List:   NewListCommand(cfg, scanner, filter, extractor, formatter),
		Run:    NewRunCommand(cfg, scanner, filter, extractor, formatter, picker, runner),
		logger: logger,
	}
}

// Register wires the commands and flags into the root command
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		cfg.Root = args[0]
		if flags.Processors > 0 {
			cfg.Processors = flags.Processors
		}
		if flags.Debug {
			c.logger.SetLevel(log.DebugLevel)
		}
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Flags.Fzf {
			return c.Run.Execute(cmd, args)
		}
		return c.List.Execute(cmd, args)
	}

	rootCmd.Flags().BoolVar(&flags.Subtests, "subtests", true, "Show individual subtests")
	rootCmd.Flags().BoolVar(&flags.Parent, "parent", true, "Show parent test patterns")
	rootCmd.Flags().BoolVar(&flags.Fzf, "fzf", false, "Interactive test selection and execution")
	rootCmd.Flags().StringVar(&flags.Tags, "tags", "", "Build tags to pass to go test")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose output (-v flag for go test)")
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*user*' or 'api_test.go')")
	rootCmd.Flags().IntVarP(&flags.Processors, "processors", "p", config.DefaultProcessors, "Number of extraction workers to use")
	rootCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
}

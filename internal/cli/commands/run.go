package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gtf/internal/config"
	"gtf/internal/discovery"
	"gtf/internal/execution"
	"gtf/internal/pattern"
	"gtf/internal/ui"
)

// RunCommand handles interactive test selection and execution
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	extractor *discovery.Extractor
	formatter *ui.Formatter
	selector  ui.Selector
	runner    execution.Invoker
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	extractor *discovery.Extractor,
	formatter *ui.Formatter,
	selector ui.Selector,
	runner execution.Invoker,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		extractor: extractor,
		formatter: formatter,
		selector:  selector,
		runner:    runner,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := rc.scanner.Scan(rc.config.Root)
	if err != nil {
		return err
	}
	files = rc.filter.ByName(files, rc.config.Flags.NameFilter)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var onDone func()
	var progress *ui.ProgressBar
	if len(files) > 0 {
		progress = ui.NewProgressBar(len(files))
		onDone = func() { progress.Add(1) }
	}
	tests, err := rc.extractor.ExtractAll(ctx, files, rc.config.Processors, onDone)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	// Selection candidates always carry both parent and subtest entries;
	// the listing flags only shape flat output.
	candidates := pattern.Flatten(tests, true, true)
	if len(candidates) == 0 {
		rc.formatter.NoTestsFound()
		return nil
	}

	chosen, err := rc.selector.Select(candidates)
	if err != nil {
		return fmt.Errorf("test selection failed: %w", err)
	}
	if len(chosen) == 0 {
		rc.formatter.NoTestsSelected()
		return nil
	}

	code, err := rc.runner.Run(ctx, pattern.Combine(chosen))
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

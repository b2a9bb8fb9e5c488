package commands

import (
	"context"

	"github.com/spf13/cobra"

	"gtf/internal/config"
	"gtf/internal/discovery"
	"gtf/internal/pattern"
	"gtf/internal/ui"
)

// ListCommand prints the discovered test identifiers, one anchored pattern
// per line
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	extractor *discovery.Extractor
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	extractor *discovery.Extractor,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		extractor: extractor,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.scanner.Scan(lc.config.Root)
	if err != nil {
		return err
	}
	files = lc.filter.ByName(files, lc.config.Flags.NameFilter)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tests, err := lc.extractor.ExtractAll(ctx, files, lc.config.Processors, nil)
	if err != nil {
		return err
	}

	ids := pattern.Flatten(tests, lc.config.Flags.Subtests, lc.config.Flags.Parent)
	lc.formatter.PrintIdentifiers(ids)
	return nil
}

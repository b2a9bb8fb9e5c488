package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gtf/internal/config"
)

// Runner invokes go test restricted to a run filter
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// BuildArgs assembles the go test argument list for the given run filter.
// An empty filter omits the -run flag entirely so everything runs.
func (r *Runner) BuildArgs(runPattern string) []string {
	args := []string{"test", "-count=1"}

	if r.config.Flags.Verbose {
		args = append(args, "-v")
	}
	if r.config.Flags.Tags != "" {
		args = append(args, "-tags="+r.config.Flags.Tags)
	}
	if runPattern != "" {
		args = append(args, "-run", runPattern)
	}

	return append(args, "./...")
}

// Run executes go test synchronously in the scanned root, streaming the
// child's output directly to the terminal. The command line is echoed first.
// The child's exit code is returned; failing tests surface through the code,
// not as an error. Returns 1 with an error if the command cannot be started.
func (r *Runner) Run(ctx context.Context, runPattern string) (int, error) {
	args := r.BuildArgs(runPattern)
	fmt.Printf("Running: %s %s\n", r.config.GoBin, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.config.GoBin, args...)
	cmd.Dir = r.config.Root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = 1
			}
			return code, nil
		}
		return 1, fmt.Errorf("failed to run %s: %w", r.config.GoBin, err)
	}

	return 0, nil
}

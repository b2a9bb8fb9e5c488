package execution

import "context"

// Invoker runs the external test command for a combined run filter and
// returns the child's exit code. A non-zero code signals failing tests, not
// an application error.
type Invoker interface {
	Run(ctx context.Context, runPattern string) (int, error)
}

package commands

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"gtf/internal/discovery"
	"gtf/internal/ui"
)

type fakeSelector struct {
	candidates []string
	result     []string
	called     bool
}

func (f *fakeSelector) Select(candidates []string) ([]string, error) {
	f.called = true
	f.candidates = candidates
	return f.result, nil
}

type fakeInvoker struct {
	pattern string
	code    int
	called  bool
}

func (f *fakeInvoker) Run(ctx context.Context, runPattern string) (int, error) {
	f.called = true
	f.pattern = runPattern
	return f.code, nil
}

func newRunCommand(t *testing.T, root string, selector *fakeSelector, invoker *fakeInvoker) *RunCommand {
	t.Helper()
	cfg := newTestConfig(root)
	return NewRunCommand(
		cfg,
		discovery.NewScanner(cfg.SkipDirs, nil),
		discovery.NewFilter(),
		discovery.NewExtractor(nil),
		ui.NewFormatter(cfg),
		selector,
		invoker,
	)
}

func TestRunCommand_Execute(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "math_test.go", `package math

func TestAdd(t *testing.T) {
	t.Run("positive", func(t *testing.T){})
	t.Run("negative", func(t *testing.T){})
}
func TestSub(t *testing.T) {}
`)

	t.Run("combines chosen identifiers into the run filter", func(t *testing.T) {
		selector := &fakeSelector{result: []string{"TestAdd/positive", "TestSub"}}
		invoker := &fakeInvoker{}
		rc := newRunCommand(t, tmpDir, selector, invoker)

		captureStdout(t, func() {
			if err := rc.Execute(&cobra.Command{}, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})

		wantCandidates := []string{"TestAdd", "TestAdd/positive", "TestAdd/negative", "TestSub"}
		if len(selector.candidates) != len(wantCandidates) {
			t.Fatalf("expected candidates %v, got %v", wantCandidates, selector.candidates)
		}
		for i, want := range wantCandidates {
			if selector.candidates[i] != want {
				t.Errorf("candidate %d: expected %q, got %q", i, want, selector.candidates[i])
			}
		}

		if !invoker.called {
			t.Fatal("expected the runner to be invoked")
		}
		if invoker.pattern != "TestAdd/positive|TestSub" {
			t.Errorf("expected run filter %q, got %q", "TestAdd/positive|TestSub", invoker.pattern)
		}
	})

	t.Run("empty selection skips the runner", func(t *testing.T) {
		selector := &fakeSelector{}
		invoker := &fakeInvoker{}
		rc := newRunCommand(t, tmpDir, selector, invoker)

		captureStdout(t, func() {
			if err := rc.Execute(&cobra.Command{}, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})

		if !selector.called {
			t.Error("expected the selector to be shown")
		}
		if invoker.called {
			t.Error("runner must not be invoked without a selection")
		}
	})

	t.Run("no discovered tests skips selection entirely", func(t *testing.T) {
		emptyDir := t.TempDir()
		selector := &fakeSelector{}
		invoker := &fakeInvoker{}
		rc := newRunCommand(t, emptyDir, selector, invoker)

		captureStdout(t, func() {
			if err := rc.Execute(&cobra.Command{}, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})

		if selector.called {
			t.Error("selector must not be shown when nothing was discovered")
		}
		if invoker.called {
			t.Error("runner must not be invoked when nothing was discovered")
		}
	})
}

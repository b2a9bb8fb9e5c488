package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"gtf/internal/config"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(data)
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func newTestConfig(root string) *config.Config {
	cfg := config.New()
	cfg.Root = root
	cfg.Processors = 2
	cfg.Flags = config.Flags{Subtests: true, Parent: true}
	return cfg
}

func TestListCommand_Execute(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "math_test.go", `package math

func TestAdd(t *testing.T) {
	t.Run("positive", func(t *testing.T){})
	t.Run("negative", func(t *testing.T){})
}
func TestSub(t *testing.T) {}
`)

	t.Run("default flags print anchored parents and subtests", func(t *testing.T) {
		cfg := newTestConfig(tmpDir)
		cmds := NewCommands(cfg)

		output := captureStdout(t, func() {
			if err := cmds.List.Execute(&cobra.Command{}, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})

		want := "^TestAdd$\n^TestAdd/positive$\n^TestAdd/negative$\n^TestSub$\n"
		if output != want {
			t.Errorf("expected output:\n%q\ngot:\n%q", want, output)
		}
	})

	t.Run("parent suppressed", func(t *testing.T) {
		cfg := newTestConfig(tmpDir)
		cfg.Flags.Parent = false
		cmds := NewCommands(cfg)

		output := captureStdout(t, func() {
			if err := cmds.List.Execute(&cobra.Command{}, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})

		want := "^TestAdd/positive$\n^TestAdd/negative$\n^TestSub$\n"
		if output != want {
			t.Errorf("expected output:\n%q\ngot:\n%q", want, output)
		}
	})

	t.Run("scan error is propagated", func(t *testing.T) {
		cfg := newTestConfig(filepath.Join(tmpDir, "missing"))
		cmds := NewCommands(cfg)

		if err := cmds.List.Execute(&cobra.Command{}, nil); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

package discovery

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"gtf/internal/domain"
)

// Extractor extracts test functions and their subtests from test files
type Extractor struct {
	logger *log.Logger
}

// NewExtractor creates a new Extractor
func NewExtractor(logger *log.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractFile reads a test file and extracts its test functions. A file that
// cannot be read is a hard error for the whole discovery.
func (e *Extractor) ExtractFile(path string) ([]domain.TestFunc, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return e.Extract(path, string(content)), nil
}

// Extract scans one file's text line by line. Whenever a line declares a
// test function, the body tracker bounds its extent and every subtest
// invocation inside that extent is appended to the record, in source order.
// The outer scan resumes on the line after the declaration, so a declaration
// nested inside another body still opens its own record.
func (e *Extractor) Extract(path, content string) []domain.TestFunc {
	start := time.Now()
	lines := strings.Split(content, "\n")

	var tests []domain.TestFunc
	for i := 0; i < len(lines); i++ {
		name, ok := TestDeclaration(lines[i])
		if !ok {
			continue
		}

		test := domain.TestFunc{
			Name: name,
			File: path,
			Line: i + 1,
		}

		end := bodyEnd(lines, i)
		var tracker bodyTracker
		for j := i; j <= end; j++ {
			tracker.feed(lines[j])
			if tracker.inBody() {
				test.Subtests = append(test.Subtests, SubtestNames(lines[j])...)
			}
		}

		tests = append(tests, test)
	}

	if e.logger != nil {
		e.logger.Debug("extracted test file", "path", path, "tests", len(tests), "took", time.Since(start))
	}
	return tests
}

// ExtractAll extracts all files using up to workers goroutines. Results are
// concatenated in the order files were given, so the output is identical to a
// sequential pass. Any read error aborts the whole batch. onDone, if set, is
// called once per completed file.
func (e *Extractor) ExtractAll(ctx context.Context, files []string, workers int, onDone func()) ([]domain.TestFunc, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = 1
	}

	perFile := make([][]domain.TestFunc, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tests, err := e.ExtractFile(path)
			if err != nil {
				return err
			}
			perFile[i] = tests
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.TestFunc
	for _, tests := range perFile {
		all = append(all, tests...)
	}
	return all, nil
}

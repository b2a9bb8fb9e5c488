package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Scanner scans for Go test files in a directory tree
type Scanner struct {
	skipDirs map[string]bool
	logger   *log.Logger
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string, logger *log.Logger) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, logger: logger}
}

// Scan finds all *_test.go files under the given root directory. Any
// traversal error aborts the scan.
func (s *Scanner) Scan(root string) ([]string, error) {
	var testfiles []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasSuffix(d.Name(), "_test.go") {
			testfiles = append(testfiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("scanned directory", "root", root, "files", len(testfiles))
	}
	return testfiles, nil
}

package discovery

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByName filters test files by base-name pattern. Patterns with glob
// metacharacters use doublestar matching (e.g. "*user*_test.go" or
// "{api,db}_test.go"); plain patterns match as substrings.
func (f *Filter) ByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	glob := strings.ContainsAny(pattern, "*?[{")

	var filtered []string
	for _, file := range files {
		name := filepath.Base(file)

		if glob {
			if matched, err := doublestar.Match(pattern, name); err == nil && matched {
				filtered = append(filtered, file)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}

	return filtered
}

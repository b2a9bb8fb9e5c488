package ui

import (
	"fmt"

	"github.com/fatih/color"

	"gtf/internal/config"
	"gtf/internal/pattern"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintIdentifiers writes one anchored run pattern per line, ready to be
// piped into go test -run or an external picker.
func (f *Formatter) PrintIdentifiers(ids []string) {
	for _, id := range ids {
		fmt.Println(pattern.Anchor(id))
	}
}

// NoTestsFound reports an empty discovery result.
func (f *Formatter) NoTestsFound() {
	color.Yellow("No tests found")
}

// NoTestsSelected reports an empty selection.
func (f *Formatter) NoTestsSelected() {
	color.Yellow("No tests selected")
}

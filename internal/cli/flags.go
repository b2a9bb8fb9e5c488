package cli

import "gtf/internal/config"

// Flags holds command-line flags
type Flags struct {
	Subtests   bool
	Parent     bool
	Fzf        bool
	Tags       string
	Verbose    bool
	NameFilter string
	Processors int
	Debug      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Subtests:   f.Subtests,
		Parent:     f.Parent,
		Fzf:        f.Fzf,
		Tags:       f.Tags,
		Verbose:    f.Verbose,
		NameFilter: f.NameFilter,
		Processors: f.Processors,
		Debug:      f.Debug,
	}
}
